package entities

import "testing"

func TestRole_HasPermission(t *testing.T) {
	if !RoleAdmin.HasPermission(PermissionConsultationWrite) {
		t.Error("ADMIN deveria poder criar consultas")
	}
	if !RoleProfessional.HasPermission(PermissionPatientWrite) {
		t.Error("PROFESSIONAL deveria poder cadastrar pacientes")
	}
	if RolePatient.HasPermission(PermissionPatientWrite) {
		t.Error("PATIENT não deveria poder cadastrar pacientes")
	}
	if !RolePatient.HasPermission(PermissionConsultationRead) {
		t.Error("PATIENT deveria poder listar consultas")
	}
	if Role("RECEPCAO").HasPermission(PermissionPatientRead) {
		t.Error("role desconhecido não deveria ter permissões")
	}
}

func TestUser_GetPermissions(t *testing.T) {
	u := &User{Role: RolePatient}
	perms := u.GetPermissions()
	if len(perms) != 3 {
		t.Fatalf("esperava 3 permissões, obteve %d", len(perms))
	}
	if Role("RECEPCAO").IsKnown() {
		t.Error("RECEPCAO não é um role pré-definido")
	}
}
