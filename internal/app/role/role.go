package role

// Role définit le niveau d'accès d'un utilisateur
type Role int

const (
	Citizen Role = iota // Demandeur
	Agent               // Agent d'état civil (instruction des dossiers)
	Admin               // Administration du catalogue et des comptes
)

func (r Role) Valid() bool {
	return r >= Citizen && r <= Admin
}
