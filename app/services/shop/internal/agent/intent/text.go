package intent

import (
	"context"
	"fmt"
	"strings"
	"time"

	"StrideAI/app/common/filter"
	"StrideAI/app/dal/catalog"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"github.com/zeromicro/go-zero/core/logx"
)

const defaultExtractTimeout = 15 * time.Second

// TextExtractor turns a typed search query into a Filter. It is best effort: every failure yields nil.
type TextExtractor struct {
	runnable compose.Runnable[string, *filter.Filter]
	tools    []*schema.ToolInfo
	timeout  time.Duration
}

func NewTextExtractor(ctx context.Context, chatModel model.BaseChatModel, timeout time.Duration) (*TextExtractor, error) {
	if chatModel == nil {
		return nil, fmt.Errorf("chat model is required")
	}
	if timeout <= 0 {
		timeout = defaultExtractTimeout
	}

	tools := []*schema.ToolInfo{buildTextFilterTool()}

	filterModel := chatModel
	if toolCapable, ok := chatModel.(model.ToolCallingChatModel); ok {
		if modelWithTools, err := toolCapable.WithTools(tools); err != nil {
			logx.WithContext(ctx).Errorf("bind search filter tool failed: %v", err)
		} else {
			filterModel = modelWithTools
		}
	}

	chain := compose.NewChain[string, *filter.Filter]()

	chain.AppendLambda(compose.InvokableLambda(func(_ context.Context, query string) ([]*schema.Message, error) {
		return []*schema.Message{
			schema.SystemMessage(textInstruction()),
			schema.UserMessage(fmt.Sprintf("Analyze this search query for a sports equipment store: %q", query)),
		}, nil
	}))

	chain.AppendChatModel(filterModel, compose.WithNodeKey(textModelNodeKey))

	chain.AppendLambda(compose.InvokableLambda(func(_ context.Context, msg *schema.Message) (*filter.Filter, error) {
		return decodeFilter(msg, textToolName)
	}))

	runnable, err := chain.Compile(ctx)
	if err != nil {
		return nil, err
	}

	return &TextExtractor{
		runnable: runnable,
		tools:    tools,
		timeout:  timeout,
	}, nil
}

// Extract returns nil when the extractor is unavailable, the query is blank or the call fails.
func (e *TextExtractor) Extract(ctx context.Context, query string) *filter.Filter {
	if e == nil || e.runnable == nil {
		return nil
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	opt := compose.WithChatModelOption(
		model.WithTools(e.tools),
		model.WithToolChoice(schema.ToolChoiceForced),
	).DesignateNode(textModelNodeKey)

	start := time.Now()
	f, err := e.runnable.Invoke(ctx, query, opt)
	if err != nil {
		logx.WithContext(ctx).Errorw("extract text filter failed",
			logx.Field("query", query), logx.Field("err", err.Error()))
		return nil
	}
	logx.WithContext(ctx).Infow("text filter extracted",
		logx.Field("query", query), logx.Field("duration", time.Since(start).String()))
	return f
}

func textInstruction() string {
	var sb strings.Builder
	sb.WriteString("Extract the shopper's intent into structured filters and submit them by calling the tool ")
	sb.WriteString(textToolName)
	sb.WriteString(". Do not answer with free text.\n")
	sb.WriteString("Map sports to 'activity': ")
	sb.WriteString(strings.Join(catalog.ActivityNames(), ", "))
	sb.WriteString(".\nMap items to 'category':\n")
	sb.WriteString("- 'Equipment': bats, rackets, paddles, sticks, clubs.\n")
	sb.WriteString("- 'Balls': balls, shuttlecocks.\n")
	sb.WriteString("- 'Protective Gear': pads, helmets, guards, gloves, eyewear.\n")
	sb.WriteString("- 'Accessories': bags, grips, nets, pumps.\n")
	sb.WriteString("Map the target age group to 'demographic': ")
	sb.WriteString(strings.Join(catalog.DemographicNames(), ", "))
	sb.WriteString(".\nUse 'Any' when a field is not mentioned. Set maxPrice to the highest price the shopper accepts, or 0 if none.")
	return sb.String()
}
