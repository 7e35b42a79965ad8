package chat

import (
	"context"
	"time"

	"StrideAI/app/dal/catalog"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/zeromicro/go-zero/core/logx"
)

// Recommender is the stateless half of the assistant: it turns a transcript into one hydrated reply.
// It is shared by every session.
type Recommender struct {
	model  model.BaseChatModel
	store  catalog.Store
	tools  []*schema.ToolInfo
	system string
}

// NewRecommender returns a recommender; a nil chatModel yields one that is permanently unavailable.
func NewRecommender(chatModel model.BaseChatModel, store catalog.Store) *Recommender {
	r := &Recommender{
		store: store,
		tools: []*schema.ToolInfo{buildRecommendTool()},
	}
	if chatModel == nil || store == nil {
		return r
	}

	r.model = chatModel
	if toolCapable, ok := chatModel.(model.ToolCallingChatModel); ok {
		if modelWithTools, err := toolCapable.WithTools(r.tools); err != nil {
			logx.Errorf("bind recommendation tool failed: %v", err)
		} else {
			r.model = modelWithTools
		}
	}
	r.system = systemInstruction(catalogContext(store.All()))
	return r
}

func (r *Recommender) Available() bool {
	return r != nil && r.model != nil
}

// Respond never fails: an unavailable recommender answers offline, any call or decoding failure
// answers with the apology message.
func (r *Recommender) Respond(ctx context.Context, history []Message) Message {
	if !r.Available() {
		return offlineMessage()
	}

	logger := logx.WithContext(ctx)
	start := time.Now()
	msg, err := r.recommend(ctx, history)
	if err != nil {
		logger.Errorw("recommendation failed",
			logx.Field("turns", len(history)), logx.Field("err", err.Error()))
		return apologyMessage()
	}
	logger.Infow("recommendation generated",
		logx.Field("turns", len(history)),
		logx.Field("products", len(msg.RecommendedProducts)),
		logx.Field("duration", time.Since(start).String()))
	return msg
}

func (r *Recommender) recommend(ctx context.Context, history []Message) (Message, error) {
	messages := []*schema.Message{
		schema.SystemMessage(r.system),
		schema.UserMessage(transcriptPrompt(history)),
	}

	out, err := r.model.Generate(ctx, messages,
		model.WithTools(r.tools),
		model.WithToolChoice(schema.ToolChoiceForced),
	)
	if err != nil {
		return Message{}, err
	}

	reply, err := decodeReply(out)
	if err != nil {
		return Message{}, err
	}

	return Message{
		Role:                RoleAssistant,
		Text:                reply.Text,
		RecommendedProducts: hydrate(r.store, reply.RecommendedProductIds),
		Suggestions:         capSuggestions(reply.Suggestions),
	}, nil
}
