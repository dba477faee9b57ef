package reservation

import "time"

// Overlaps aplica a semântica de intervalo aberto [s, e): dois
// intervalos conflitam se s1 < e2 e s2 < e1. Encostar no limite
// (e1 == s2) não é conflito.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return s1.Before(e2) && s2.Before(e1)
}
