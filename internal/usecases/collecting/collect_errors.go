package collecting

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de coleta
var (
	// Erro fatal: a verificação de conectividade com o provedor de
	// métricas falhou antes de qualquer perfil ser processado
	ErrConnectivity = errors.New("metrics provider connectivity check failed")

	// Erros contidos por perfil
	ErrSessionAcquire = errors.New("error acquiring browser session")
	ErrAdListFetch    = errors.New("error fetching ad list for account")
	ErrInsightsFetch  = errors.New("error fetching insights for account")
)

// ProfileError é um erro de coleta com o perfil envolvido
type ProfileError struct {
	Err       error
	ProfileID string
}

func (e *ProfileError) Error() string {
	return fmt.Sprintf("profile %s: %s", e.ProfileID, e.Err.Error())
}

func (e *ProfileError) Unwrap() error {
	return e.Err
}

func NewProfileError(err error, profileID string) *ProfileError {
	return &ProfileError{
		Err:       err,
		ProfileID: profileID,
	}
}
