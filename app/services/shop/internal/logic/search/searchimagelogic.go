package search

import (
	"context"
	"encoding/base64"
	"strings"

	"StrideAI/app/common/consts/errno"
	"StrideAI/app/common/filter"
	"StrideAI/app/services/shop/internal/logic/helper"
	"StrideAI/app/services/shop/internal/mq"
	"StrideAI/app/services/shop/internal/svc"
	"StrideAI/app/services/shop/internal/types"

	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/x/errors"
)

type SearchImageLogic struct {
	logx.Logger
	ctx    context.Context
	svcCtx *svc.ServiceContext
}

func NewSearchImageLogic(ctx context.Context, svcCtx *svc.ServiceContext) *SearchImageLogic {
	return &SearchImageLogic{
		Logger: logx.WithContext(ctx),
		ctx:    ctx,
		svcCtx: svcCtx,
	}
}

func (l *SearchImageLogic) SearchImage(req *types.SearchImageRequest) (resp *types.ListingResponse, err error) {
	image, mimeType, err := decodeImage(req.Image, req.MimeType)
	if err != nil {
		return nil, errors.New(int(errno.InvalidParam), "invalid image: "+err.Error())
	}

	var f *filter.Filter
	if l.svcCtx.ImageExtractor != nil && !l.svcCtx.ModelQuota.Allow(l.ctx) {
		l.Logger.Infow("model quota exhausted, skipping image extraction")
	} else {
		f = l.svcCtx.ImageExtractor.Extract(l.ctx, image, mimeType)
	}
	if f == nil {
		l.Logger.Infow("image not interpreted, showing full catalog", logx.Field("bytes", len(image)))
	}
	return helper.Listing(l.ctx, l.svcCtx, mq.SourceImage, "", f), nil
}

// decodeImage accepts raw base64 or a data URL, whose media type wins over mimeType.
func decodeImage(raw, mimeType string) ([]byte, string, error) {
	raw = strings.TrimSpace(raw)
	if rest, ok := strings.CutPrefix(raw, "data:"); ok {
		header, payload, found := strings.Cut(rest, ",")
		if !found {
			return nil, "", errors.New(int(errno.InvalidParam), "malformed data url")
		}
		if mt, _, _ := strings.Cut(header, ";"); mt != "" {
			mimeType = mt
		}
		raw = payload
	}

	image, err := base64.StdEncoding.DecodeString(raw)
	if err != nil {
		return nil, "", err
	}
	if len(image) == 0 {
		return nil, "", errors.New(int(errno.InvalidParam), "empty image")
	}
	return image, mimeType, nil
}
