package models

// Group is a labelled, coloured bucket. Both attributes may be cleared.
type Group struct {
	EntityStarter
	Libelle *string `db:"libelle" json:"libelle"`
	Couleur *string `db:"couleur" json:"couleur"`
}
