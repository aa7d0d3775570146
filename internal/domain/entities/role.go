package entities

// Role representa o perfil de acesso de um usuário no sistema.
// Valores fora das constantes abaixo são aceitos (texto livre), mas não recebem permissões.
type Role string

const (
	RoleAdmin        Role = "ADMIN"
	RoleProfessional Role = "PROFESSIONAL"
	RolePatient      Role = "PATIENT"
)

// DefaultRole é o perfil atribuído quando o cadastro não informa um
const DefaultRole = RolePatient

// Permission representa uma permissão específica
type Permission string

const (
	// Patient permissions
	PermissionPatientRead  Permission = "patients.read"
	PermissionPatientWrite Permission = "patients.write"

	// Professional permissions
	PermissionProfessionalRead  Permission = "professionals.read"
	PermissionProfessionalWrite Permission = "professionals.write"

	// Consultation permissions
	PermissionConsultationRead  Permission = "consultations.read"
	PermissionConsultationWrite Permission = "consultations.write"
)

// RolePermissions mapeia roles para suas permissões
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionPatientRead,
		PermissionPatientWrite,
		PermissionProfessionalRead,
		PermissionProfessionalWrite,
		PermissionConsultationRead,
		PermissionConsultationWrite,
	},
	RoleProfessional: {
		PermissionPatientRead,
		PermissionPatientWrite,
		PermissionProfessionalRead,
		PermissionProfessionalWrite,
		PermissionConsultationRead,
		PermissionConsultationWrite,
	},
	RolePatient: {
		PermissionPatientRead,
		PermissionProfessionalRead,
		PermissionConsultationRead,
	},
}

// GetPermissions retorna permissões de um role
func (r Role) GetPermissions() []Permission {
	return RolePermissions[r]
}

// HasPermission verifica se role tem permissão
func (r Role) HasPermission(permission Permission) bool {
	for _, p := range RolePermissions[r] {
		if p == permission {
			return true
		}
	}
	return false
}

// IsKnown informa se o role é um dos perfis pré-definidos
func (r Role) IsKnown() bool {
	_, ok := RolePermissions[r]
	return ok
}
