package sample

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

func randomInt(min, max int) int {
	return min + rand.IntN(max-min+1)
}

func randomStringFromSet(values ...string) string {
	n := len(values)
	if n == 0 {
		return ""
	}

	return values[rand.IntN(n)]
}

func randomFirstName() string {
	return randomStringFromSet(
		"Ana",
		"Bruno",
		"Chen",
		"Dara",
		"Emeka",
		"Farah",
		"Giorgi",
		"Hana",
		"Ivan",
		"Joana",
	)
}

func randomLastName() string {
	return randomStringFromSet(
		"Silva",
		"Okafor",
		"Nakamura",
		"Müller",
		"Kowalski",
		"Haddad",
		"Lindqvist",
		"Moreau",
	)
}

func randomEmailDomain() string {
	return randomStringFromSet("example.com", "mail.test", "ledger.local")
}

func randomEmail(first, last string) string {
	user := strings.ToLower(fmt.Sprintf("%s.%s%d", first, last, randomInt(1, 99)))
	return user + "@" + randomEmailDomain()
}
