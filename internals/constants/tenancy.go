package constants

// Particionamento por mantenedora (secretaria/rede que é dona dos registros).
const (
	// OwnerAll é o valor reservado da visão administrativa sem filtro de
	// mantenedora (super usuário da rede).
	OwnerAll = "*"
)

// Papéis aceitos no claim "role" do token.
const (
	RoleAdmin   = "admin"
	RoleGestor  = "gestor"
	RoleUsuario = "usuario"
)

// Motivo padrão gravado no histórico quando o chamador não informa um.
const DefaultPlacementReason = "Transferência de unidade"

// Limite (dias, inclusivo) de atestado que um chamador não-administrativo
// pode registrar.
const MaxAtestadoDaysNonAdmin = 5
