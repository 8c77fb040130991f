package endpoints

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/copydrive/copydrive/internal/api"
	"github.com/copydrive/copydrive/internal/generate"
	"github.com/copydrive/copydrive/internal/svcctx"
)

// maxRequestBodyBytes bounds generation request bodies.
const maxRequestBodyBytes = 1 << 20

// GenerateResponse is the success response for system prompt generation.
type GenerateResponse struct {
	Success      bool      `json:"success"`
	SystemPrompt string    `json:"systemPrompt"`
	ContextHash  string    `json:"contextHash"`
	Model        string    `json:"model"`
	Timestamp    time.Time `json:"timestamp"`
	Fallback     bool      `json:"fallback"`
}

// GenerateEndpoint handles POST /v1/system-prompt.
type GenerateEndpoint struct{}

func (e *GenerateEndpoint) Route() (string, string, http.HandlerFunc) {
	return "POST", "/v1/system-prompt", e.handler
}

func (e *GenerateEndpoint) RequiresAuth() bool { return true }

func (e *GenerateEndpoint) handler(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	req, err := generate.ParseRequest(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	gen := svcctx.GeneratorFrom(r.Context())
	if gen == nil {
		writeError(w, http.StatusInternalServerError, "generator not available")
		return
	}

	result, err := gen.Generate(r.Context(), req)
	if err != nil {
		writeError(w, statusForError(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, GenerateResponse{
		Success:      true,
		SystemPrompt: result.SystemPrompt,
		ContextHash:  result.ContextHash,
		Model:        result.Model,
		Timestamp:    result.GeneratedAt,
		Fallback:     result.Fallback,
	})
}

// statusForError maps pipeline errors to HTTP status codes. Errors whose
// message is auth shaped surface as 401 so clients can re-authenticate.
func statusForError(err error) int {
	if errors.Is(err, generate.ErrInvalidRequest) {
		return http.StatusBadRequest
	}
	msg := err.Error()
	if strings.Contains(msg, "Unauthorized") || strings.Contains(msg, "Missing authorization") {
		return http.StatusUnauthorized
	}
	return http.StatusInternalServerError
}

func (e *GenerateEndpoint) Command(getServerURL func() string) *cobra.Command {
	var requestFile string
	var serverAPIKey string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a system prompt from a request file",
		Long: `Generate a system prompt by POSTing a JSON request to the server.

The request file holds the copy context (copyType, framework, objective,
styles, emotionalFocus) plus optional projectIdentity, methodology,
audienceSegment, offer, and copyId. Use "-" to read from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var raw []byte
			var err error
			if requestFile == "-" {
				raw, err = io.ReadAll(os.Stdin)
			} else {
				raw, err = os.ReadFile(requestFile)
			}
			if err != nil {
				return fmt.Errorf("failed to read request: %w", err)
			}

			var body any
			if err := json.Unmarshal(raw, &body); err != nil {
				return fmt.Errorf("request is not valid JSON: %w", err)
			}

			client := api.NewClient(getServerURL(), serverAPIKey)
			var resp GenerateResponse
			if err := client.Post(cmd.Context(), "/v1/system-prompt", body, &resp); err != nil {
				return err
			}
			return api.Output(resp)
		},
	}

	cmd.Flags().StringVarP(&requestFile, "file", "f", "-", "Request JSON file (\"-\" for stdin)")
	cmd.Flags().StringVar(&serverAPIKey, "api-key", "", "API key for the server")
	return cmd
}
