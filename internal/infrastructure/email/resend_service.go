// Package email implementa el envío de emails transaccionales usando la API
// REST de Resend. Usa net/http de la librería estándar; no requiere el SDK
// oficial.
package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/skyllex94/orderexpress-api/internal/application/ports"
)

// Verificar en tiempo de compilación que ResendService implementa EmailSender.
var _ ports.EmailSender = (*ResendService)(nil)

const resendEmailsURL = "https://api.resend.com/emails"

// ResendService adaptador que implementa EmailSender usando la API de Resend.
type ResendService struct {
	apiKey     string
	from       string
	httpClient *http.Client
}

// NewResendService construye el adaptador.
// Si apiKey está vacío las llamadas devuelven error descriptivo en lugar de panic.
func NewResendService(apiKey, from string) *ResendService {
	return &ResendService{
		apiKey: apiKey,
		from:   from,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// ── Estructuras internas del protocolo Resend ─────────────────────────────────

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	Text    string   `json:"text,omitempty"`
	HTML    string   `json:"html,omitempty"`
}

type resendError struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

// Send envía un email transaccional. Los errores del proveedor se devuelven
// envueltos; no hay reintento automático.
func (s *ResendService) Send(ctx context.Context, msg ports.EmailMessage) error {
	if s.apiKey == "" {
		return fmt.Errorf("email: MAIL_RESEND_API_KEY no configurado")
	}

	payload := resendRequest{
		From:    s.from,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Text:    msg.Text,
		HTML:    msg.HTML,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("email: serializar request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, resendEmailsURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("email: crear HTTP request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("email: timeout o cancelación: %w", ctx.Err())
		}
		return fmt.Errorf("email: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		rawBody, _ := io.ReadAll(io.LimitReader(resp.Body, 16*1024))
		var errResp resendError
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Message != "" {
			return fmt.Errorf("email: Resend error (%s): %s", errResp.Name, errResp.Message)
		}
		return fmt.Errorf("email: Resend HTTP %d: %s", resp.StatusCode, string(rawBody))
	}
	return nil
}
