package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"szerzodes-gpt/errs"
	"szerzodes-gpt/logger"
	"szerzodes-gpt/templates"
	"szerzodes-gpt/types"
	"szerzodes-gpt/vars"
)

const partiesText = "Megbízó: Kiss János Megbízott: Teszt Kft."

func fastForm() map[string]string {
	return map[string]string{
		"parties": partiesText,
		"subject": "Weboldal fejlesztése",
		"fee":     "500 000 Ft",
		"place":   "Budapest",
	}
}

func newDispatcher(norm PartyNormalizer, gw *stubGateway, strategy string) *GenerationService {
	return NewGenerationService(templates.NewStore(""), norm, gw, GenerationConfig{
		DetailedModel:   "gpt-4o",
		PartiesStrategy: strategy,
	}, logger.Nop())
}

func TestFastMegbizasiNormalized(t *testing.T) {
	norm := &stubNormalizer{out: map[string]string{
		"CLIENT_NAME":     "Kiss János",
		"CLIENT_ADDRESS":  "1111 Budapest, Fő utca 1.",
		"CLIENT_REGNO":    "",
		"CONTRACTOR_NAME": "Teszt Kft.",
	}}
	gw := &stubGateway{}
	res, err := newDispatcher(norm, gw, vars.PartiesNormalize).Generate(context.Background(), types.GenerationRequest{
		ContractType: "megbizasi",
		Mode:         types.ModeFast,
		FormData:     fastForm(),
	})
	require.NoError(t, err)

	assert.Contains(t, res.ContractHTML, "Kiss János")
	assert.Contains(t, res.ContractHTML, "1111 Budapest, Fő utca 1.")
	assert.Contains(t, res.ContractHTML, "Teszt Kft.")
	assert.Contains(t, res.ContractHTML, "Weboldal fejlesztése")
	assert.Contains(t, res.ContractHTML, "500 000 Ft")
	assert.Contains(t, res.ContractHTML, vars.BlankMarker)
	assert.NotContains(t, res.ContractHTML, "{{")

	assert.Equal(t, vars.SummaryFast, res.SummaryHU)
	assert.Equal(t, types.ModeFast, res.Telemetry.Mode)
	assert.Equal(t, vars.PartiesNormalize, res.Telemetry.PartiesStrategy)
	assert.Equal(t, "megbizasi_fast.html", res.Telemetry.Template)
	assert.NotEmpty(t, res.Telemetry.RequestID)
	assert.Equal(t, 1, norm.calls)
	assert.Equal(t, 0, gw.count())
}

func TestFastMegbizasiRawStrategy(t *testing.T) {
	norm := &stubNormalizer{}
	gw := &stubGateway{}
	res, err := newDispatcher(norm, gw, vars.PartiesRaw).Generate(context.Background(), types.GenerationRequest{
		ContractType: "megbizasi",
		Mode:         types.ModeFast,
		FormData:     fastForm(),
	})
	require.NoError(t, err)

	assert.Equal(t, 0, norm.calls)
	assert.Equal(t, 0, gw.count())
	assert.Equal(t, vars.PartiesRaw, res.Telemetry.PartiesStrategy)
	assert.Contains(t, res.ContractHTML, "<strong>Kiss János</strong>")
	assert.Contains(t, res.ContractHTML, "<strong>Teszt Kft.</strong>")
	assert.Contains(t, res.ContractHTML, partiesText)
	assert.NotContains(t, res.ContractHTML, "{{")
}

func TestFastNormalizerFailureKeepsRawText(t *testing.T) {
	norm := &stubNormalizer{err: errs.External("llm invoke", errors.New("timeout"))}
	res, err := newDispatcher(norm, &stubGateway{}, vars.PartiesNormalize).Generate(context.Background(), types.GenerationRequest{
		ContractType: "megbizasi",
		Mode:         types.ModeFast,
		FormData:     fastForm(),
	})
	require.NoError(t, err)
	assert.Equal(t, vars.PartiesRaw, res.Telemetry.PartiesStrategy)
	assert.Contains(t, res.ContractHTML, partiesText)
	assert.Contains(t, res.ContractHTML, "<strong>Kiss János</strong>")
}

func TestFastExplicitFieldsBeatHeuristic(t *testing.T) {
	form := fastForm()
	form["client_name"] = "Nagy Éva"
	res, err := newDispatcher(&stubNormalizer{}, &stubGateway{}, vars.PartiesRaw).Generate(context.Background(), types.GenerationRequest{
		ContractType: "megbizasi",
		Mode:         types.ModeFast,
		FormData:     form,
	})
	require.NoError(t, err)
	assert.Contains(t, res.ContractHTML, "<strong>Nagy Éva</strong>")
	assert.NotContains(t, res.ContractHTML, "<strong>Kiss János</strong>")
}

func TestFastNormalizerOnlyMergesPartyFields(t *testing.T) {
	norm := &stubNormalizer{out: map[string]string{
		"CLIENT_NAME": "Kiss János",
		"FEE":         "1 Ft",
		"SUBJECT":     "felülírt tárgy",
	}}
	res, err := newDispatcher(norm, &stubGateway{}, vars.PartiesNormalize).Generate(context.Background(), types.GenerationRequest{
		ContractType: "megbizasi",
		Mode:         types.ModeFast,
		FormData:     fastForm(),
	})
	require.NoError(t, err)
	assert.Contains(t, res.ContractHTML, "500 000 Ft")
	assert.Contains(t, res.ContractHTML, "Weboldal fejlesztése")
	assert.NotContains(t, res.ContractHTML, "1 Ft")
	assert.NotContains(t, res.ContractHTML, "felülírt tárgy")
}

func TestFastSubstringKeysFillDefaultedSlots(t *testing.T) {
	res, err := newDispatcher(&stubNormalizer{}, &stubGateway{}, vars.PartiesRaw).Generate(context.Background(), types.GenerationRequest{
		ContractType: "megbizasi",
		Mode:         types.ModeFast,
		FormData: map[string]string{
			"FEE_AMOUNT":       "500 000 Ft",
			"PLACE_OF_SIGNING": "Budapest",
		},
	})
	require.NoError(t, err)
	assert.Contains(t, res.ContractHTML, "A megbízási díj összege: 500 000 Ft.")
	assert.Contains(t, res.ContractHTML, "Kelt: Budapest,")
}

func TestFastEmptyFormData(t *testing.T) {
	res, err := newDispatcher(&stubNormalizer{}, &stubGateway{}, vars.PartiesNormalize).Generate(context.Background(), types.GenerationRequest{
		ContractType: "nda",
		Mode:         types.ModeFast,
	})
	require.NoError(t, err)
	assert.NotContains(t, res.ContractHTML, "{{")
	assert.Empty(t, res.Telemetry.PartiesStrategy)
}

func TestFastMissingTemplate(t *testing.T) {
	_, err := newDispatcher(&stubNormalizer{}, &stubGateway{}, "").Generate(context.Background(), types.GenerationRequest{
		ContractType: "berleti",
		Mode:         types.ModeFast,
	})
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestFastInvalidContractType(t *testing.T) {
	_, err := newDispatcher(&stubNormalizer{}, &stubGateway{}, "").Generate(context.Background(), types.GenerationRequest{
		ContractType: "../../etc/passwd",
		Mode:         types.ModeFast,
	})
	assert.ErrorIs(t, err, errs.ErrValidation)
}

func TestDetailedReturnsModelTextVerbatim(t *testing.T) {
	gw := &stubGateway{reply: "  <div>Kész szerződés [OSSZEFOGLALO] marad</div>\n"}
	norm := &stubNormalizer{}
	res, err := newDispatcher(norm, gw, "").Generate(context.Background(), types.GenerationRequest{
		ContractType: "megbizasi",
		Mode:         types.ModeDetailed,
		FormData:     map[string]string{"CLIENT_NAME": "Kiss János"},
	})
	require.NoError(t, err)

	assert.Equal(t, gw.reply, res.ContractHTML)
	assert.Equal(t, vars.SummaryDetailed, res.SummaryHU)
	assert.Equal(t, types.ModeDetailed, res.Telemetry.Mode)
	assert.Equal(t, "gpt-4o", res.Telemetry.Model)
	assert.Equal(t, 4000, res.Telemetry.MaxTokens)
	assert.Equal(t, 0, norm.calls)

	require.Equal(t, 1, gw.count())
	call := gw.calls[0]
	assert.Equal(t, "gpt-4o", call.Model)
	assert.InDelta(t, 0.3, call.Temperature, 1e-6)
	assert.Equal(t, 4000, call.MaxTokens)
	assert.Equal(t, vars.SystemPromptGenerator, call.SystemPrompt)
	assert.Contains(t, call.UserPrompt, "{{CONTRACTOR_OBLIGATIONS}}")
	assert.Contains(t, call.UserPrompt, "- CLIENT_NAME: Kiss János")
}

func TestDetailedGatewayError(t *testing.T) {
	gw := &stubGateway{err: errs.External("llm invoke", errors.New("429"))}
	_, err := newDispatcher(&stubNormalizer{}, gw, "").Generate(context.Background(), types.GenerationRequest{
		ContractType: "nda",
		Mode:         types.ModeDetailed,
	})
	assert.ErrorIs(t, err, errs.ErrExternal)
}

func TestGenerateRejectsZeroMode(t *testing.T) {
	_, err := newDispatcher(&stubNormalizer{}, &stubGateway{}, "").Generate(context.Background(), types.GenerationRequest{
		ContractType: "nda",
	})
	assert.ErrorIs(t, err, errs.ErrValidation)
}
