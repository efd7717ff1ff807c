package testutil

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/Shreerajan/UI-Generator/internal/planner"
	"github.com/Shreerajan/UI-Generator/internal/uischema"
)

// Replies captured from the model, used across package tests.
const (
	LoginPlanJSON = `{"layout":"centered","modificationType":"create","components":[{"type":"Card","props":{"title":"Login"},"children":[{"type":"Input","props":{"label":"Email","type":"email"}},{"type":"Input","props":{"label":"Password","type":"password"}},{"type":"Button","props":{"children":"Login"}}]}]}`

	FencedEmptyPlanReply = "```json\n{\"layout\":\"centered\",\"modificationType\":\"create\",\"components\":[]}\n```"
)

// StubChatModel satisfies planner.ChatModel.
type StubChatModel struct {
	mu sync.Mutex

	Reply *schema.Message
	Err   error

	Calls   int
	Input   []*schema.Message
	Options *model.Options
}

// ReplyWith returns a stub answering every call with content.
func ReplyWith(content string) *StubChatModel {
	return &StubChatModel{Reply: schema.AssistantMessage(content, nil)}
}

func (s *StubChatModel) Generate(_ context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Calls++
	s.Input = input
	s.Options = model.GetCommonOptions(nil, opts...)
	return s.Reply, s.Err
}

// Factory returns a planner.ModelFactory that always hands out s.
func (s *StubChatModel) Factory() planner.ModelFactory {
	return func(context.Context, planner.Config) (planner.ChatModel, error) {
		return s, nil
	}
}

// StubRequester satisfies generation.PlanRequester.
type StubRequester struct {
	Raw    json.RawMessage
	Err    error
	Prompt string
}

func (s *StubRequester) Request(_ context.Context, prompt string) (json.RawMessage, error) {
	s.Prompt = prompt
	return s.Raw, s.Err
}

// MustPlan decodes a plan or panics.
func MustPlan(raw string) uischema.UIPlan {
	plan, err := uischema.DecodePlan([]byte(raw))
	if err != nil {
		panic(err)
	}
	return plan
}
