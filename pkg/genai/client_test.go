package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// newStubServer fakes the generateContent endpoint with a fixed text reply.
func newStubServer(t *testing.T, reply string, capture *generateRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, ":generateContent") {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		if got := r.Header.Get("x-goog-api-key"); got != "test-key" {
			t.Errorf("api key header = %q", got)
		}
		if capture != nil {
			if err := json.NewDecoder(r.Body).Decode(capture); err != nil {
				t.Errorf("decode request: %v", err)
			}
		}
		resp := generateResponse{
			Candidates: []*candidate{{
				Content: &Content{Parts: []*Part{{Text: reply}}},
			}},
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func testClient(srv *httptest.Server) *Client {
	return NewClient("test-key", WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
}

func TestDiagnoseCrashParsesSchema(t *testing.T) {
	reply := `{"error":"NullPointerException","cause":"Plugin X is outdated","solution":"Update plugin X","severity":"critical"}`
	srv := newStubServer(t, reply, nil)
	defer srv.Close()

	diag, err := testClient(srv).DiagnoseCrash(context.Background(), "---- Crash Report ----")
	if err != nil {
		t.Fatalf("DiagnoseCrash() error = %v", err)
	}
	if diag.Error != "NullPointerException" || diag.Severity != "critical" {
		t.Errorf("DiagnoseCrash() = %+v", diag)
	}
}

func TestGenerateJSONStripsFences(t *testing.T) {
	reply := "```json\n{\"line1\":\"Welcome\",\"line2\":\"Have fun\"}\n```"
	srv := newStubServer(t, reply, nil)
	defer srv.Close()

	motd, err := testClient(srv).SearchServerMOTD(context.Background(), "play.example.com")
	if err != nil {
		t.Fatalf("SearchServerMOTD() error = %v", err)
	}
	if motd.Line1 != "Welcome" || motd.Line2 != "Have fun" {
		t.Errorf("SearchServerMOTD() = %+v", motd)
	}
}

func TestGenerateProjectModelSelection(t *testing.T) {
	reply := `{"title":"Test Plugin","files":[{"name":"plugin.yml","content":"name: Test"}],"steps":["drop the jar in plugins/"]}`

	tests := []struct {
		name      string
		deep      bool
		wantModel string
	}{
		{name: "fast path", deep: false, wantModel: defaultFastModel},
		{name: "deep path", deep: true, wantModel: defaultDeepModel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotModel string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				parts := strings.Split(r.URL.Path, "/")
				gotModel = strings.TrimSuffix(parts[len(parts)-1], ":generateContent")
				resp := generateResponse{
					Candidates: []*candidate{{Content: &Content{Parts: []*Part{{Text: reply}}}}},
				}
				json.NewEncoder(w).Encode(resp)
			}))
			defer srv.Close()

			result, err := testClient(srv).GenerateProject(context.Background(), &ProjectRequest{
				Prompt:   "teleport command",
				Category: "plugin",
				Version:  "1.21",
				Platform: "paper",
				Deep:     tt.deep,
			})
			if err != nil {
				t.Fatalf("GenerateProject() error = %v", err)
			}
			if gotModel != tt.wantModel {
				t.Errorf("model = %q, want %q", gotModel, tt.wantModel)
			}
			if result.Title != "Test Plugin" || len(result.Files) != 1 {
				t.Errorf("GenerateProject() = %+v", result)
			}
		})
	}
}

func TestGenerateErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":{"message":"quota exhausted"}}`, http.StatusTooManyRequests)
	}))
	defer srv.Close()

	_, err := testClient(srv).DiagnoseCrash(context.Background(), "log")
	if err == nil {
		t.Fatal("expected error on non-200 status")
	}
	if !strings.Contains(err.Error(), "429") {
		t.Errorf("error should carry the status code, got %v", err)
	}
}

func TestGenerateEmptyCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(generateResponse{})
	}))
	defer srv.Close()

	_, err := testClient(srv).AskAssistant(context.Background(), "hello", nil)
	if err == nil || !strings.Contains(err.Error(), "empty response") {
		t.Errorf("expected empty response error, got %v", err)
	}
}

func TestGenerateImageReturnsDataURI(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := generateResponse{
			Candidates: []*candidate{{
				Content: &Content{Parts: []*Part{{
					InlineData: &InlineData{MimeType: "image/png", Data: "aGVsbG8="},
				}}},
			}},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	uri, err := testClient(srv).GenerateImage(context.Background(), "Steve in a cave")
	if err != nil {
		t.Fatalf("GenerateImage() error = %v", err)
	}
	if uri != "data:image/png;base64,aGVsbG8=" {
		t.Errorf("GenerateImage() = %q", uri)
	}
}
