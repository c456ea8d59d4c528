package services

import "log"

// Notice est une notification non bloquante remontée à l'appelant quand une
// écriture durable a échoué mais que l'opération a réussi localement. Le
// panier doit rester utilisable même si le stockage ne l'est pas.
type Notice struct {
	Message string `json:"message"`
}

// persist est le décorateur unique appliqué à la frontière de l'adaptateur
// de persistance : toute écriture passe par ici et reçoit le même contrat
// de repli. En cas d'échec on log, on garde le résultat local et on
// retourne un Notice — jamais une erreur fatale.
func persist(op string, fn func() error) *Notice {
	if err := fn(); err != nil {
		log.Printf("⚠️ Écriture durable échouée (%s), état local conservé: %v", op, err)
		return &Notice{Message: "Sauvegarde différée : " + op + " non persisté"}
	}
	return nil
}
