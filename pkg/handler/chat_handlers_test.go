package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stormdotcom/friday-code-gpt/pkg/event"
	"github.com/stormdotcom/friday-code-gpt/pkg/models"
	"github.com/stormdotcom/friday-code-gpt/pkg/service"
	"github.com/stormdotcom/friday-code-gpt/pkg/storage"
	"github.com/stormdotcom/friday-code-gpt/pkg/store"
	"github.com/stormdotcom/friday-code-gpt/pkg/utils"
)

func newTestRouter(t *testing.T) (*gin.Engine, *store.ConversationStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := store.New(store.Options{
		Provider:    storage.NewMemoryProvider(),
		Responder:   service.NewKeywordResponder(),
		Emitter:     event.NewEmitter(),
		TypingDelay: 10 * time.Millisecond,
	})
	t.Cleanup(s.Close)

	r := gin.New()
	api := r.Group("/api/v1")
	NewChatHandler(s).RegisterRoutes(api)
	NewUploadHandler(service.NewUploadService(utils.GetLogger())).RegisterRoutes(api)
	return r, s
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request body: %v", err)
		}
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) models.Response {
	t.Helper()
	var resp models.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response envelope: %v (body %s)", err, w.Body.String())
	}
	return resp
}

func TestCreateAndListConversations(t *testing.T) {
	r, _ := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/conversations", nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d, body %s", w.Code, w.Body.String())
	}

	resp := decodeEnvelope(t, w)
	created, _ := json.Marshal(resp.Data)
	var conv models.Conversation
	if err := json.Unmarshal(created, &conv); err != nil {
		t.Fatalf("decode conversation: %v", err)
	}
	if conv.ID == "" || conv.Title != models.DefaultTitle {
		t.Fatalf("created conversation = %+v", conv)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/conversations", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list status = %d", w.Code)
	}
	resp = decodeEnvelope(t, w)
	b, _ := json.Marshal(resp.Data)
	var list models.ConversationListResponse
	if err := json.Unmarshal(b, &list); err != nil {
		t.Fatal(err)
	}
	// 3 seed conversations plus the new one, newest first.
	if list.Total != 4 || list.Conversations[0].ID != conv.ID {
		t.Fatalf("list total = %d, first id = %s, want 4 and %s", list.Total, list.Conversations[0].ID, conv.ID)
	}
}

func TestGetConversation_NotFound(t *testing.T) {
	r, _ := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/api/v1/conversations/nope", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
}

func TestRenameConversation_HTTP(t *testing.T) {
	r, s := newTestRouter(t)
	id := s.CreateNewConversation()

	w := doJSON(t, r, http.MethodPatch, "/api/v1/conversations/"+id, models.RenameConversationRequest{Title: "Renamed"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	conv, _ := s.GetConversation(id)
	if conv.Title != "Renamed" {
		t.Fatalf("title = %q", conv.Title)
	}
}

func TestRenameConversation_MissingTitle(t *testing.T) {
	r, s := newTestRouter(t)
	id := s.CreateNewConversation()

	w := doJSON(t, r, http.MethodPatch, "/api/v1/conversations/"+id, map[string]string{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestDeleteConversation_HTTP(t *testing.T) {
	r, s := newTestRouter(t)
	id := s.CreateNewConversation()

	w := doJSON(t, r, http.MethodDelete, "/api/v1/conversations/"+id, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if _, ok := s.GetConversation(id); ok {
		t.Fatal("conversation still present after delete")
	}

	w = doJSON(t, r, http.MethodDelete, "/api/v1/conversations/"+id, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("second delete status = %d, want 404", w.Code)
	}
}

func TestSendMessage_HTTP(t *testing.T) {
	r, s := newTestRouter(t)
	id := s.CreateNewConversation()

	w := doJSON(t, r, http.MethodPost, "/api/v1/chat/messages", models.SendMessageRequest{Content: "hello"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	conv, _ := s.GetConversation(id)
	if len(conv.Messages) != 1 || conv.Messages[0].Content != "hello" {
		t.Fatalf("messages = %+v", conv.Messages)
	}
}

func TestSendMessage_NoSelection(t *testing.T) {
	r, s := newTestRouter(t)
	s.ClearCurrentConversation()

	w := doJSON(t, r, http.MethodPost, "/api/v1/chat/messages", models.SendMessageRequest{Content: "hello"})
	if w.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", w.Code)
	}
}

func TestSendMessage_TooLong(t *testing.T) {
	r, s := newTestRouter(t)
	s.CreateNewConversation()

	long := strings.Repeat("x", MaxMessageLength+1)
	w := doJSON(t, r, http.MethodPost, "/api/v1/chat/messages", models.SendMessageRequest{Content: long})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestSendMessage_SelectsByConversationID(t *testing.T) {
	r, s := newTestRouter(t)
	first := s.CreateNewConversation()
	s.CreateNewConversation() // becomes current

	w := doJSON(t, r, http.MethodPost, "/api/v1/chat/messages", models.SendMessageRequest{
		ConversationID: first,
		Content:        "routed",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}
	conv, _ := s.GetConversation(first)
	if len(conv.Messages) != 1 {
		t.Fatalf("message not routed to selected conversation: %+v", conv.Messages)
	}
}

func TestSelectConversation_HTTP(t *testing.T) {
	r, s := newTestRouter(t)
	id := s.CreateNewConversation()
	s.ClearCurrentConversation()

	w := doJSON(t, r, http.MethodPost, "/api/v1/conversations/"+id+"/select", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	cur, ok := s.CurrentConversation()
	if !ok || cur.ID != id {
		t.Fatalf("current = %v ok=%v", cur, ok)
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/conversations/nope/select", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("select unknown status = %d, want 404", w.Code)
	}
}

func TestGetMessages_Rendered(t *testing.T) {
	r, s := newTestRouter(t)
	id := s.CreateNewConversation()
	if err := s.SendMessage("look:\n```go\nfmt.Println(1)\n```", nil); err != nil {
		t.Fatal(err)
	}

	w := doJSON(t, r, http.MethodGet, "/api/v1/conversations/"+id+"/messages?render=true", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, `"segments"`) || !strings.Contains(body, `"language":"go"`) {
		t.Fatalf("rendered payload missing segments: %s", body)
	}
}

func TestTypingState_HTTP(t *testing.T) {
	r, s := newTestRouter(t)
	s.CreateNewConversation()

	w := doJSON(t, r, http.MethodGet, "/api/v1/chat/typing", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `"is_typing":false`) {
		t.Fatalf("body = %s", w.Body.String())
	}

	if err := s.SendMessage("hi", nil); err != nil {
		t.Fatal(err)
	}
	w = doJSON(t, r, http.MethodGet, "/api/v1/chat/typing", nil)
	if !strings.Contains(w.Body.String(), `"is_typing":true`) {
		t.Fatalf("body = %s", w.Body.String())
	}
}

func TestUpload_HTTP(t *testing.T) {
	r, _ := newTestRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	part, err := mw.CreateFormFile("files", "photo.png")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write([]byte("fake image bytes")); err != nil {
		t.Fatal(err)
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", w.Code, w.Body.String())
	}

	resp := decodeEnvelope(t, w)
	b, _ := json.Marshal(resp.Data)
	var upload models.UploadResponse
	if err := json.Unmarshal(b, &upload); err != nil {
		t.Fatal(err)
	}
	if len(upload.Files) != 1 {
		t.Fatalf("got %d files, want 1", len(upload.Files))
	}
	f := upload.Files[0]
	if f.Name != "photo.png" || !strings.HasPrefix(f.URL, "/api/files/") {
		t.Fatalf("uploaded file = %+v", f)
	}
}

func TestUpload_NoFiles(t *testing.T) {
	r, _ := newTestRouter(t)

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
