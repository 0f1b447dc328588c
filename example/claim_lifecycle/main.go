// Command claim_lifecycle walks one claim through submission and approval
// against an in-memory store, printing each command's outcome.
package main

import (
	"context"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sicko7947/claimflow"
	"github.com/sicko7947/claimflow/engine"
	"github.com/sicko7947/claimflow/identity"
	"github.com/sicko7947/claimflow/store"
)

const (
	creator  = claimflow.Identity("addr-creator")
	outsider = claimflow.Identity("addr-other")
)

type step struct {
	name   string
	sender claimflow.Identity
	msg    claimflow.ExecuteMsg
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: time.RFC3339,
	})

	eng := engine.NewEngine(
		store.NewMemoryStore(),
		identity.NewFormatValidator(),
		engine.WithLogger(log.Logger.Level(zerolog.WarnLevel)),
	)
	ctx := context.Background()

	if _, err := eng.Instantiate(ctx, claimflow.MessageInfo{Sender: creator}, claimflow.InstantiateMsg{}); err != nil {
		log.Fatal().Err(err).Msg("Failed to instantiate")
	}

	submit := claimflow.ExecuteMsg{SubmitClaim: &claimflow.SubmitClaimMsg{
		Patient:       "addr-patient",
		MedicalRecord: "r1",
	}}
	approve := claimflow.ExecuteMsg{ApproveClaim: &claimflow.ApproveClaimMsg{Admin: creator.String()}}

	steps := []step{
		{"submit", creator, submit},
		{"submit again", creator, submit},
		{"approve as outsider", outsider, approve},
		{"approve", creator, approve},
		{"approve again", creator, approve},
	}

	for _, s := range steps {
		resp, err := eng.Execute(ctx, claimflow.MessageInfo{Sender: s.sender}, s.msg)
		if err != nil {
			log.Info().Str("step", s.name).Str("code", claimflow.ErrorCode(err)).Msg("Rejected")
			continue
		}
		log.Info().Str("step", s.name).Str("method", resp.Method()).Msg("Accepted")
	}
}
