package domain

import (
	"errors"
	"fmt"
)

// RemoteErrorKind classifica as falhas de comunicação com um marketplace.
// A política de retry fica com o chamador (motor de reconciliação), então o
// cliente só classifica, nunca tenta de novo.
type RemoteErrorKind string

const (
	// RemoteUnavailable: falha de rede ou timeout. O chamador pode tentar de novo.
	RemoteUnavailable RemoteErrorKind = "remote_unavailable"
	// RemoteAuthFailed: 401/403. Exige correção de credenciais pelo operador.
	RemoteAuthFailed RemoteErrorKind = "remote_auth_failed"
	// RemoteProtocolError: resposta com formato inesperado. O corpo bruto é
	// preservado para diagnóstico.
	RemoteProtocolError RemoteErrorKind = "remote_protocol_error"
	// RemoteRejected: rejeição de regra de negócio (4xx). A mensagem do
	// marketplace é exposta sem alteração.
	RemoteRejected RemoteErrorKind = "remote_rejected"
)

// RemoteError é o erro tipado retornado por todos os clientes de marketplace
type RemoteError struct {
	Kind        RemoteErrorKind
	Marketplace string
	Message     string
	StatusCode  int
	RawBody     string
	Err         error
}

func (e *RemoteError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s [%s]: %s", e.Marketplace, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s [%s]", e.Marketplace, e.Kind)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}

func NewRemoteError(kind RemoteErrorKind, marketplace, message string) *RemoteError {
	return &RemoteError{Kind: kind, Marketplace: marketplace, Message: message}
}

// ErrorKind extrai a classificação de um erro de cliente; retorna false se
// o erro não veio de um marketplace
func ErrorKind(err error) (RemoteErrorKind, bool) {
	var remoteErr *RemoteError
	if errors.As(err, &remoteErr) {
		return remoteErr.Kind, true
	}
	return "", false
}

func IsUnavailable(err error) bool {
	kind, ok := ErrorKind(err)
	return ok && kind == RemoteUnavailable
}

func IsAuthFailed(err error) bool {
	kind, ok := ErrorKind(err)
	return ok && kind == RemoteAuthFailed
}

func IsProtocolError(err error) bool {
	kind, ok := ErrorKind(err)
	return ok && kind == RemoteProtocolError
}

func IsRejected(err error) bool {
	kind, ok := ErrorKind(err)
	return ok && kind == RemoteRejected
}
