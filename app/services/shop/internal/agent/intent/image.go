package intent

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"StrideAI/app/common/filter"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/zeromicro/go-zero/core/logx"
)

const (
	defaultImageMIME = "image/jpeg"

	imageInstruction = `Analyze this image and extract product search filters for a sports store.
Identify the sport (activity), the type of item (category), and the likely target audience (demographic).
Use 'Any' for anything you cannot tell from the picture. Submit the result by calling the tool ` + imageToolName + `.`
)

// ImageExtractor derives a Filter from a product photo in a single model call, without retries.
type ImageExtractor struct {
	model   model.BaseChatModel
	tools   []*schema.ToolInfo
	timeout time.Duration
}

func NewImageExtractor(visionModel model.BaseChatModel, timeout time.Duration) (*ImageExtractor, error) {
	if visionModel == nil {
		return nil, fmt.Errorf("vision model is required")
	}
	if timeout <= 0 {
		timeout = defaultExtractTimeout
	}
	return &ImageExtractor{
		model:   visionModel,
		tools:   []*schema.ToolInfo{buildImageFilterTool()},
		timeout: timeout,
	}, nil
}

// Extract returns nil when the extractor is unavailable, the image is empty or the call fails.
// Callers own the busy indicator; this call blocks until the model answers or times out.
func (e *ImageExtractor) Extract(ctx context.Context, image []byte, mimeType string) *filter.Filter {
	if e == nil || e.model == nil || len(image) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	start := time.Now()
	msg, err := e.model.Generate(ctx,
		[]*schema.Message{imageMessage(image, mimeType)},
		model.WithTools(e.tools),
		model.WithToolChoice(schema.ToolChoiceForced),
	)
	if err != nil {
		logx.WithContext(ctx).Errorw("extract image filter failed", logx.Field("err", err.Error()))
		return nil
	}

	f, err := decodeFilter(msg, imageToolName)
	if err != nil {
		logx.WithContext(ctx).Errorw("decode image filter failed", logx.Field("err", err.Error()))
		return nil
	}
	// the image schema carries no price or keywords
	f.MaxPrice = 0
	f.Keywords = nil

	logx.WithContext(ctx).Infow("image filter extracted",
		logx.Field("bytes", len(image)), logx.Field("duration", time.Since(start).String()))
	return f
}

func imageMessage(image []byte, mimeType string) *schema.Message {
	mimeType = normalizeMIME(image, mimeType)
	dataURL := "data:" + mimeType + ";base64," + base64.StdEncoding.EncodeToString(image)
	return &schema.Message{
		Role: schema.User,
		MultiContent: []schema.ChatMessagePart{
			{
				Type: schema.ChatMessagePartTypeImageURL,
				ImageURL: &schema.ChatMessageImageURL{
					URL:      dataURL,
					MIMEType: mimeType,
				},
			},
			{
				Type: schema.ChatMessagePartTypeText,
				Text: imageInstruction,
			},
		},
	}
}

func normalizeMIME(image []byte, mimeType string) string {
	mimeType = strings.ToLower(strings.TrimSpace(mimeType))
	if strings.HasPrefix(mimeType, "image/") {
		return mimeType
	}
	if sniffed := http.DetectContentType(image); strings.HasPrefix(sniffed, "image/") {
		return sniffed
	}
	return defaultImageMIME
}
