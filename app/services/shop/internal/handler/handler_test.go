package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"StrideAI/app/common/consts/biz"
	"StrideAI/app/common/consts/errno"
	"StrideAI/app/common/response"
	"StrideAI/app/common/validator"
	"StrideAI/app/dal/catalog"
	agentchat "StrideAI/app/services/shop/internal/agent/chat"
	"StrideAI/app/services/shop/internal/agent/modeltest"
	"StrideAI/app/services/shop/internal/config"
	chat "StrideAI/app/services/shop/internal/handler/chat"
	product "StrideAI/app/services/shop/internal/handler/product"
	search "StrideAI/app/services/shop/internal/handler/search"
	"StrideAI/app/services/shop/internal/svc"
	"StrideAI/app/services/shop/internal/types"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
	"github.com/zeromicro/go-zero/core/stores/redis/redistest"
	"github.com/zeromicro/go-zero/rest/httpx"
	"github.com/zeromicro/go-zero/rest/pathvar"
)

func TestMain(m *testing.M) {
	httpx.SetErrorHandlerCtx(response.ErrorHandler)
	httpx.SetValidator(validator.New())
	os.Exit(m.Run())
}

func newServiceContext(t *testing.T, chatModel model.BaseChatModel) *svc.ServiceContext {
	t.Helper()
	store, err := catalog.NewDefaultStore()
	if err != nil {
		t.Fatal(err)
	}
	c := config.Config{Session: config.SessionConf{Greeting: true}}
	sc, err := svc.NewServiceContextWithModels(c, store, chatModel, chatModel)
	if err != nil {
		t.Fatal(err)
	}
	return sc
}

func serve(sc *svc.ServiceContext, h http.HandlerFunc, r *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	sc.SessionMiddleware(h)(w, r)
	return w
}

func jsonRequest(method, target string, body any) *http.Request {
	raw, _ := json.Marshal(body)
	r := httptest.NewRequest(method, target, bytes.NewReader(raw))
	r.Header.Set("Content-Type", "application/json")
	return r
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return out
}

func ids(products []types.Product) string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Id)
	}
	return strings.Join(out, ",")
}

func TestListProducts(t *testing.T) {
	sc := newServiceContext(t, nil)

	cases := []struct {
		name      string
		query     string
		wantIds   string
		wantTitle string
	}{
		{name: "everything", query: "", wantIds: "c1,c2,c3,s1,s2,t1,t2,p1,p2,b1,b2,f1,r1,r2", wantTitle: "All Gear"},
		{name: "sale", query: "?maxPrice=100", wantIds: "c2,s2,t2,p2,b2,f1,r2", wantTitle: "All Gear"},
		{name: "new arrivals", query: "?featured=new", wantIds: "s1,p1", wantTitle: "New Arrivals"},
		{name: "sport", query: "?activity=Tennis", wantIds: "t1,t2", wantTitle: "Tennis Gear"},
		{name: "demographic is advisory", query: "?activity=Tennis&demographic=Junior", wantIds: "t1,t2", wantTitle: "Tennis Gear"},
		{name: "sentinels", query: "?category=All&activity=Any", wantIds: "c1,c2,c3,s1,s2,t1,t2,p1,p2,b1,b2,f1,r1,r2", wantTitle: "All Gear"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := serve(sc, product.ListProductsHandler(sc), httptest.NewRequest(http.MethodGet, "/api/products"+tc.query, nil))
			if w.Code != http.StatusOK {
				t.Fatalf("status %d: %s", w.Code, w.Body.String())
			}
			resp := decode[types.ListingResponse](t, w)
			if got := ids(resp.Products); got != tc.wantIds {
				t.Fatalf("expected %s, got %s", tc.wantIds, got)
			}
			if resp.Title != tc.wantTitle || resp.Count != len(resp.Products) || !resp.Resolved {
				t.Fatalf("unexpected listing: %+v", resp)
			}
		})
	}
}

func TestListProducts_IssuesSessionCookie(t *testing.T) {
	sc := newServiceContext(t, nil)
	w := serve(sc, product.ListProductsHandler(sc), httptest.NewRequest(http.MethodGet, "/api/products", nil))

	var found bool
	for _, c := range w.Result().Cookies() {
		if c.Name == biz.SESSIONCOOKIE && c.Value != "" {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a session cookie")
	}
}

func TestListProducts_RejectsNegativePrice(t *testing.T) {
	sc := newServiceContext(t, nil)
	w := serve(sc, product.ListProductsHandler(sc), httptest.NewRequest(http.MethodGet, "/api/products?maxPrice=-5", nil))
	resp := decode[response.Response](t, w)
	if resp.StatusCode != errno.InvalidParam {
		t.Fatalf("expected InvalidParam, got %+v", resp)
	}
}

func TestGetProduct(t *testing.T) {
	sc := newServiceContext(t, nil)

	r := pathvar.WithVars(httptest.NewRequest(http.MethodGet, "/api/products/t1", nil), map[string]string{"id": "t1"})
	w := serve(sc, product.GetProductHandler(sc), r)
	got := decode[types.GetProductResponse](t, w)
	if got.Product.Id != "t1" || got.Product.Category != "Equipment" || got.Product.Activity != "Tennis" {
		t.Fatalf("unexpected product: %+v", got.Product)
	}

	r = pathvar.WithVars(httptest.NewRequest(http.MethodGet, "/api/products/zzz", nil), map[string]string{"id": "zzz"})
	w = serve(sc, product.GetProductHandler(sc), r)
	if resp := decode[response.Response](t, w); resp.StatusCode != errno.ProductNotFound {
		t.Fatalf("expected ProductNotFound, got %+v", resp)
	}
}

func TestMenu(t *testing.T) {
	sc := newServiceContext(t, nil)
	w := serve(sc, product.MenuHandler(sc), httptest.NewRequest(http.MethodGet, "/api/menu", nil))
	resp := decode[types.MenuResponse](t, w)

	if len(resp.Sections) != 4 || resp.Sections[0].Key != "new" {
		t.Fatalf("unexpected sections: %+v", resp.Sections)
	}
	if resp.Sale.Filter.MaxPrice != biz.SalePriceCap {
		t.Fatalf("unexpected sale link: %+v", resp.Sale)
	}
	if len(resp.Sports) != len(catalog.Activities) {
		t.Fatalf("expected one tile per sport, got %d", len(resp.Sports))
	}
}

func TestSearchText(t *testing.T) {
	m := &modeltest.Model{Replies: []*schema.Message{
		modeltest.ToolReply("submit_search_filters", `{"category":"Balls","activity":"Any","demographic":"Any","maxPrice":50}`),
	}}
	sc := newServiceContext(t, m)

	w := serve(sc, search.SearchTextHandler(sc), jsonRequest(http.MethodPost, "/api/search/text", map[string]string{"query": "cheap balls"}))
	resp := decode[types.ListingResponse](t, w)
	if got := ids(resp.Products); got != "p2,b2" {
		t.Fatalf("expected p2,b2 got %s", got)
	}
	if resp.Title != "cheap balls" || resp.Filter.Category != "Balls" || resp.Filter.MaxPrice != 50 {
		t.Fatalf("unexpected listing: %+v", resp)
	}
}

func TestSearchText_DegradesToFullCatalog(t *testing.T) {
	cases := []struct {
		name  string
		model model.BaseChatModel
	}{
		{name: "offline", model: nil},
		{name: "service failure", model: &modeltest.Model{Err: errors.New("unavailable")}},
		{name: "unparseable reply", model: &modeltest.Model{Replies: []*schema.Message{schema.AssistantMessage("no idea", nil)}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sc := newServiceContext(t, tc.model)
			w := serve(sc, search.SearchTextHandler(sc), jsonRequest(http.MethodPost, "/api/search/text", map[string]string{"query": "something"}))
			resp := decode[types.ListingResponse](t, w)
			if resp.Count != 14 || resp.Resolved {
				t.Fatalf("expected the full catalog, got %+v", resp)
			}
		})
	}
}

func TestSearchImage(t *testing.T) {
	m := &modeltest.Model{Replies: []*schema.Message{
		modeltest.ToolReply("submit_image_filters", `{"category":"Equipment","activity":"Cricket","demographic":"Adult"}`),
	}}
	sc := newServiceContext(t, m)

	body := map[string]string{"image": "data:image/png;base64,iVBORw0KGgo="}
	w := serve(sc, search.SearchImageHandler(sc), jsonRequest(http.MethodPost, "/api/search/image", body))
	resp := decode[types.ListingResponse](t, w)
	if got := ids(resp.Products); got != "c1" {
		t.Fatalf("expected c1 got %s", got)
	}
	if m.Calls() != 1 {
		t.Fatalf("expected a single model call, got %d", m.Calls())
	}

	w = serve(sc, search.SearchImageHandler(sc), jsonRequest(http.MethodPost, "/api/search/image", map[string]string{}))
	if resp := decode[response.Response](t, w); resp.StatusCode != errno.InvalidParam {
		t.Fatalf("expected InvalidParam for a missing image, got %+v", resp)
	}
}

func TestChat_Conversation(t *testing.T) {
	m := &modeltest.Model{Replies: []*schema.Message{
		modeltest.ToolReply("submit_recommendation", `{"text":"The Elite Carbon Pro gives you control.","recommendedProductIds":["t1","zzz"],"suggestions":["Lighter options?"]}`),
	}}
	sc := newServiceContext(t, m)

	w := serve(sc, chat.GetConversationHandler(sc), httptest.NewRequest(http.MethodGet, "/api/chat", nil))
	first := decode[types.ConversationResponse](t, w)
	if len(first.Messages) != 1 || first.Messages[0].Role != "assistant" || first.Offline {
		t.Fatalf("expected the greeting, got %+v", first)
	}
	cookies := w.Result().Cookies()

	r := jsonRequest(http.MethodPost, "/api/chat/messages", map[string]string{"text": "tennis racket for control"})
	for _, c := range cookies {
		r.AddCookie(c)
	}
	w = serve(sc, chat.SubmitMessageHandler(sc), r)
	resp := decode[types.ConversationResponse](t, w)
	if len(resp.Messages) != 3 || resp.Awaiting {
		t.Fatalf("unexpected conversation: %+v", resp)
	}
	reply := resp.Messages[2]
	if reply.Text != "The Elite Carbon Pro gives you control." || ids(reply.RecommendedProducts) != "t1" {
		t.Fatalf("unexpected reply: %+v", reply)
	}

	r = httptest.NewRequest(http.MethodDelete, "/api/chat", nil)
	for _, c := range cookies {
		r.AddCookie(c)
	}
	w = serve(sc, chat.ResetConversationHandler(sc), r)
	if resp := decode[types.ConversationResponse](t, w); len(resp.Messages) != 1 {
		t.Fatalf("expected only the greeting after reset, got %+v", resp)
	}
}

func TestChat_EmptyMessage(t *testing.T) {
	sc := newServiceContext(t, &modeltest.Model{})
	w := serve(sc, chat.SubmitMessageHandler(sc), jsonRequest(http.MethodPost, "/api/chat/messages", map[string]string{"text": "   "}))
	if resp := decode[response.Response](t, w); resp.StatusCode != errno.EmptyMessage {
		t.Fatalf("expected EmptyMessage, got %+v", resp)
	}
}

func TestChat_Offline(t *testing.T) {
	sc := newServiceContext(t, nil)
	w := serve(sc, chat.SubmitMessageHandler(sc), jsonRequest(http.MethodPost, "/api/chat/messages", map[string]string{"text": "cricket bat"}))
	resp := decode[types.ConversationResponse](t, w)
	if !resp.Offline || len(resp.Messages) != 3 || resp.Messages[2].Text != agentchat.OfflineText {
		t.Fatalf("expected the offline reply, got %+v", resp)
	}
}

func TestModelRouteTimeout(t *testing.T) {
	c := config.Config{}
	c.ChatModel.Timeout = 10e9
	c.Session.ReplyTimeout = 30e9
	if got := modelRouteTimeout(c); got != 30e9+routeTimeoutSlack {
		t.Fatalf("unexpected timeout %v", got)
	}
}

// waitForNextSecond leaves a full second before the quota bucket refills.
func waitForNextSecond() {
	time.Sleep(time.Second - time.Duration(time.Now().Nanosecond()))
}

func exhaustedQuota(t *testing.T) *svc.ModelQuota {
	t.Helper()
	q := svc.NewModelQuota(config.QuotaConf{Rate: 1, Burst: 1}, redistest.CreateRedis(t))
	waitForNextSecond()
	for i := 0; i < 3 && q.Allow(context.Background()); i++ {
	}
	return q
}

func withCookies(r *http.Request, cookies []*http.Cookie) *http.Request {
	for _, c := range cookies {
		r.AddCookie(c)
	}
	return r
}

func TestSearch_QuotaExhaustedShowsFullCatalog(t *testing.T) {
	m := &modeltest.Model{Replies: []*schema.Message{
		modeltest.ToolReply("submit_search_filters", `{"category":"Balls","activity":"Any","demographic":"Any","maxPrice":50}`),
	}}
	sc := newServiceContext(t, m)
	sc.ModelQuota = exhaustedQuota(t)

	w := serve(sc, search.SearchTextHandler(sc), jsonRequest(http.MethodPost, "/api/search/text", map[string]string{"query": "cheap balls"}))
	if resp := decode[types.ListingResponse](t, w); resp.Count != 14 || resp.Resolved {
		t.Fatalf("expected the full catalog, got %+v", resp)
	}

	w = serve(sc, search.SearchImageHandler(sc), jsonRequest(http.MethodPost, "/api/search/image", map[string]string{"image": "iVBORw0KGgo="}))
	if resp := decode[types.ListingResponse](t, w); resp.Count != 14 || resp.Resolved {
		t.Fatalf("expected the full catalog, got %+v", resp)
	}

	if m.Calls() != 0 {
		t.Fatalf("no model call expected once the quota is spent, got %d", m.Calls())
	}
}

func TestChat_QuotaExhausted(t *testing.T) {
	m := &modeltest.Model{Replies: []*schema.Message{
		modeltest.ToolReply("submit_recommendation", `{"text":"Try the Elite Carbon Pro."}`),
	}}
	sc := newServiceContext(t, m)

	w := serve(sc, chat.GetConversationHandler(sc), httptest.NewRequest(http.MethodGet, "/api/chat", nil))
	cookies := w.Result().Cookies()
	sc.ModelQuota = exhaustedQuota(t)

	r := withCookies(jsonRequest(http.MethodPost, "/api/chat/messages", map[string]string{"text": "tennis racket"}), cookies)
	w = serve(sc, chat.SubmitMessageHandler(sc), r)
	if resp := decode[response.Response](t, w); resp.StatusCode != errno.ModelQuotaExceeded {
		t.Fatalf("expected ModelQuotaExceeded, got %+v", resp)
	}
	if m.Calls() != 0 {
		t.Fatalf("expected no model call, got %d", m.Calls())
	}

	w = serve(sc, chat.GetConversationHandler(sc), withCookies(httptest.NewRequest(http.MethodGet, "/api/chat", nil), cookies))
	if resp := decode[types.ConversationResponse](t, w); len(resp.Messages) != 1 || resp.Awaiting {
		t.Fatalf("refused submit must leave the session alone, got %+v", resp)
	}
}

func TestChat_BusySession(t *testing.T) {
	gate := make(chan struct{})
	m := &modeltest.Model{
		Replies: []*schema.Message{modeltest.ToolReply("submit_recommendation", `{"text":"Try the Elite Carbon Pro."}`)},
		Gate:    gate,
	}
	sc := newServiceContext(t, m)

	w := serve(sc, chat.GetConversationHandler(sc), httptest.NewRequest(http.MethodGet, "/api/chat", nil))
	cookies := w.Result().Cookies()

	// one token: a busy submit that spent it would come back as ModelQuotaExceeded
	sc.ModelQuota = svc.NewModelQuota(config.QuotaConf{Rate: 1, Burst: 1}, redistest.CreateRedis(t))
	waitForNextSecond()

	first := make(chan *httptest.ResponseRecorder, 1)
	go func() {
		r := withCookies(jsonRequest(http.MethodPost, "/api/chat/messages", map[string]string{"text": "tennis racket"}), cookies)
		first <- serve(sc, chat.SubmitMessageHandler(sc), r)
	}()

	deadline := time.Now().Add(5 * time.Second)
	for m.Calls() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("first submit never reached the model")
		}
		time.Sleep(time.Millisecond)
	}

	r := withCookies(jsonRequest(http.MethodPost, "/api/chat/messages", map[string]string{"text": "anything lighter?"}), cookies)
	w = serve(sc, chat.SubmitMessageHandler(sc), r)
	if resp := decode[response.Response](t, w); resp.StatusCode != errno.SessionBusy {
		t.Fatalf("expected SessionBusy, got %+v", resp)
	}

	gate <- struct{}{}
	var done *httptest.ResponseRecorder
	select {
	case done = <-first:
	case <-time.After(5 * time.Second):
		t.Fatal("first submit never returned")
	}
	resp := decode[types.ConversationResponse](t, done)
	if len(resp.Messages) != 3 || resp.Awaiting || resp.Messages[2].Text != "Try the Elite Carbon Pro." {
		t.Fatalf("unexpected conversation: %+v", resp)
	}
	if m.Calls() != 1 {
		t.Fatalf("the busy submit must not reach the model, got %d calls", m.Calls())
	}
}
