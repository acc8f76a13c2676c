package chat

import (
	"context"
	"errors"
	"testing"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"szerzodes-gpt/errs"
	"szerzodes-gpt/logger"
)

type fakeChatModel struct {
	reply   string
	err     error
	gotMsgs []*schema.Message
	gotOpts *model.Options
}

func (f *fakeChatModel) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	f.gotMsgs = input
	f.gotOpts = model.GetCommonOptions(nil, opts...)
	if f.err != nil {
		return nil, f.err
	}
	return schema.AssistantMessage(f.reply, nil), nil
}

func (f *fakeChatModel) Stream(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("not implemented")
}

func TestEinoGatewayInvoke(t *testing.T) {
	fake := &fakeChatModel{reply: "<p>ok</p>"}
	g := NewEinoGateway(fake, logger.Nop())

	out, err := g.Invoke(context.Background(), Invocation{
		Model:        "gpt-4o",
		SystemPrompt: "sys",
		UserPrompt:   "user",
		Temperature:  0.3,
		MaxTokens:    4000,
	})
	require.NoError(t, err)
	assert.Equal(t, "<p>ok</p>", out)

	require.Len(t, fake.gotMsgs, 2)
	assert.Equal(t, schema.System, fake.gotMsgs[0].Role)
	assert.Equal(t, "user", fake.gotMsgs[1].Content)

	require.NotNil(t, fake.gotOpts.Model)
	assert.Equal(t, "gpt-4o", *fake.gotOpts.Model)
	require.NotNil(t, fake.gotOpts.Temperature)
	assert.InDelta(t, 0.3, *fake.gotOpts.Temperature, 1e-6)
	require.NotNil(t, fake.gotOpts.MaxTokens)
	assert.Equal(t, 4000, *fake.gotOpts.MaxTokens)
}

func TestFixedModelGatewayIgnoresRequestedModel(t *testing.T) {
	fake := &fakeChatModel{reply: "x"}
	g := NewFixedModelGateway(fake, "qwen2.5:7b", logger.Nop())

	_, err := g.Invoke(context.Background(), Invocation{Model: "gpt-4o", UserPrompt: "u"})
	require.NoError(t, err)
	assert.Nil(t, fake.gotOpts.Model)
	assert.Equal(t, "qwen2.5:7b", g.ModelName("gpt-4o"))
	require.Len(t, fake.gotMsgs, 1)
}

func TestEinoGatewayWrapsFailure(t *testing.T) {
	fake := &fakeChatModel{err: errors.New("429 rate limited")}
	g := NewEinoGateway(fake, logger.Nop())

	_, err := g.Invoke(context.Background(), Invocation{UserPrompt: "u"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrExternal)
}
