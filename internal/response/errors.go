package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrCredenciaisInvalidas ErrCode = "INVALID_CREDENTIALS"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidacao       ErrCode = "VALIDATION_ERROR"
	ErrIDInvalido      ErrCode = "INVALID_ID"
	ErrPayloadInvalido ErrCode = "INVALID_PAYLOAD"
	ErrNomeObrigatorio ErrCode = "NAME_REQUIRED"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNaoEncontrado       ErrCode = "NOT_FOUND"
	ErrNomeDuplicado       ErrCode = "DUPLICATE_NAME"
	ErrEmailDuplicado      ErrCode = "DUPLICATE_EMAIL"
	ErrJaMatriculado       ErrCode = "ALREADY_ENROLLED"
	ErrPossuiDependentes   ErrCode = "DEPENDENCY_EXISTS"
	ErrAcaoNaoReconhecida  ErrCode = "UNKNOWN_ACTION"
	ErrMetodoNaoPermitido  ErrCode = "METHOD_NOT_ALLOWED"
	ErrMuitasRequisicoes   ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInterno ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Authentication ────────────────────────────────────────────────
	case ErrCredenciaisInvalidas:
		return "Credenciais inválidas."

	// ─── Validation ────────────────────────────────────────────────────
	case ErrValidacao:
		return "Erros de validação. Verifique os campos informados."
	case ErrIDInvalido:
		return "ID não informado ou inválido."
	case ErrPayloadInvalido:
		return "Corpo da requisição inválido."
	case ErrNomeObrigatorio:
		return "Nome não informado."

	// ─── Resources ─────────────────────────────────────────────────────
	case ErrNaoEncontrado:
		return "Registro não encontrado."
	case ErrNomeDuplicado:
		return "Já existe um registro com este nome."
	case ErrEmailDuplicado:
		return "Já existe um registro com este e-mail."
	case ErrJaMatriculado:
		return "O aluno já está matriculado nesta modalidade."
	case ErrPossuiDependentes:
		return "Não é possível excluir: existem registros associados."
	case ErrAcaoNaoReconhecida:
		return "Ação não reconhecida."
	case ErrMetodoNaoPermitido:
		return "Método não permitido."
	case ErrMuitasRequisicoes:
		return "Muitas requisições. Tente novamente mais tarde."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInterno:
		return "Erro interno do servidor."
	default:
		return "Ocorreu um erro inesperado."
	}
}
