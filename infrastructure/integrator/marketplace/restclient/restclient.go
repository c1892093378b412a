package restclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	mkdomain "github.com/vfg2006/marketplace-manager-api/infrastructure/integrator/marketplace/domain"
)

// requestTimeout limita toda chamada aos marketplaces. Nenhuma chamada pode
// bloquear além disso.
const requestTimeout = 30 * time.Second

// maxRawBodySample limita o tamanho do corpo bruto preservado em erros de
// protocolo para diagnóstico
const maxRawBodySample = 2048

// Caller encapsula a comunicação HTTP com a API de um marketplace:
// autenticação Basic com par chave/segredo, timeout e classificação de
// erros na taxonomia comum. Não há retry aqui: a política de retry é do
// motor de reconciliação.
type Caller struct {
	marketplace string
	baseURL     string
	apiKey      string
	apiSecret   string
	httpClient  *http.Client
}

func New(marketplace, baseURL, apiKey, apiSecret string) *Caller {
	return &Caller{
		marketplace: marketplace,
		baseURL:     baseURL,
		apiKey:      apiKey,
		apiSecret:   apiSecret,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
	}
}

// remoteErrorEnvelope é o formato de erro comum das APIs dos marketplaces
type remoteErrorEnvelope struct {
	Message string `json:"message"`
}

// DoJSON executa uma requisição JSON e decodifica a resposta em out.
// Todo erro retornado é um *domain.RemoteError.
func (c *Caller) DoJSON(ctx context.Context, method, endpoint string, query url.Values, payload any, out any) error {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return &mkdomain.RemoteError{
			Kind:        mkdomain.RemoteUnavailable,
			Marketplace: c.marketplace,
			Message:     fmt.Sprintf("URL base inválida: %s", c.baseURL),
			Err:         err,
		}
	}
	base.Path = path.Join(base.Path, endpoint)
	if query != nil {
		base.RawQuery = query.Encode()
	}

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return &mkdomain.RemoteError{
				Kind:        mkdomain.RemoteProtocolError,
				Marketplace: c.marketplace,
				Message:     "erro ao serializar o corpo da requisição",
				Err:         err,
			}
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, base.String(), body)
	if err != nil {
		return &mkdomain.RemoteError{
			Kind:        mkdomain.RemoteUnavailable,
			Marketplace: c.marketplace,
			Message:     "erro ao criar a requisição",
			Err:         err,
		}
	}

	req.SetBasicAuth(c.apiKey, c.apiSecret)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Timeouts e falhas de rede entram aqui: o chamador decide o retry
		return &mkdomain.RemoteError{
			Kind:        mkdomain.RemoteUnavailable,
			Marketplace: c.marketplace,
			Message:     "erro ao executar a requisição",
			Err:         err,
		}
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return &mkdomain.RemoteError{
			Kind:        mkdomain.RemoteUnavailable,
			Marketplace: c.marketplace,
			Message:     "erro ao ler a resposta",
			Err:         err,
		}
	}

	if err := c.checkStatus(resp.StatusCode, rawBody); err != nil {
		return err
	}

	if out != nil {
		if err := json.Unmarshal(rawBody, out); err != nil {
			return &mkdomain.RemoteError{
				Kind:        mkdomain.RemoteProtocolError,
				Marketplace: c.marketplace,
				Message:     "resposta JSON com formato inesperado",
				StatusCode:  resp.StatusCode,
				RawBody:     bodySample(rawBody),
				Err:         err,
			}
		}
	}

	return nil
}

func (c *Caller) checkStatus(statusCode int, rawBody []byte) error {
	switch {
	case statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden:
		return &mkdomain.RemoteError{
			Kind:        mkdomain.RemoteAuthFailed,
			Marketplace: c.marketplace,
			Message:     "credenciais recusadas pelo marketplace",
			StatusCode:  statusCode,
		}
	case statusCode >= 400 && statusCode < 500:
		// Rejeição de regra de negócio: a mensagem do marketplace é
		// repassada sem alteração para o operador
		message := fmt.Sprintf("requisição rejeitada com status %d", statusCode)
		var envelope remoteErrorEnvelope
		if err := json.Unmarshal(rawBody, &envelope); err == nil && envelope.Message != "" {
			message = envelope.Message
		}
		return &mkdomain.RemoteError{
			Kind:        mkdomain.RemoteRejected,
			Marketplace: c.marketplace,
			Message:     message,
			StatusCode:  statusCode,
			RawBody:     bodySample(rawBody),
		}
	case statusCode >= 500:
		return &mkdomain.RemoteError{
			Kind:        mkdomain.RemoteUnavailable,
			Marketplace: c.marketplace,
			Message:     fmt.Sprintf("marketplace indisponível, status %d", statusCode),
			StatusCode:  statusCode,
		}
	}

	return nil
}

func bodySample(rawBody []byte) string {
	if len(rawBody) > maxRawBodySample {
		return string(rawBody[:maxRawBodySample])
	}
	return string(rawBody)
}
