// Package data holds static word lists.
package data

import (
	"math/rand"

	"github.com/golangdaddy/roadrush/pkg/mathutil"
)

// CommonNames contains lists of common first names used for profiles
// when no account name is available
var CommonNames = struct {
	Male   []string
	Female []string
}{
	Male: []string{
		"James", "John", "Robert", "Michael", "William", "David", "Richard", "Joseph",
		"Thomas", "Charles", "Christopher", "Daniel", "Matthew", "Anthony", "Donald",
		"Mark", "Paul", "Steven", "Andrew", "Kenneth", "George", "Joshua", "Kevin",
		"Brian", "Edward", "Ronald", "Timothy", "Jason", "Jeffrey", "Ryan", "Jacob",
		"Gary", "Nicholas", "Eric", "Stephen", "Jonathan", "Larry", "Justin", "Scott",
		"Brandon", "Frank", "Benjamin", "Gregory", "Samuel", "Raymond", "Patrick",
		"Alexander", "Jack", "Dennis", "Jerry",
	},
	Female: []string{
		"Mary", "Patricia", "Jennifer", "Linda", "Elizabeth", "Barbara", "Susan",
		"Jessica", "Sarah", "Karen", "Nancy", "Lisa", "Betty", "Margaret", "Sandra",
		"Ashley", "Kimberly", "Emily", "Donna", "Michelle", "Dorothy", "Carol",
		"Amanda", "Melissa", "Deborah", "Stephanie", "Rebecca", "Laura", "Sharon",
		"Cynthia", "Kathleen", "Amy", "Shirley", "Angela", "Helen", "Anna", "Brenda",
		"Pamela", "Nicole", "Emma", "Samantha", "Katherine", "Christine", "Debra",
		"Rachel", "Catherine", "Carolyn", "Janet", "Ruth", "Maria",
	},
}


// RandomName picks a first name from either list.
func RandomName(rng *rand.Rand) string {
	if rng.Intn(2) == 0 {
		return mathutil.RandomChoice(rng, CommonNames.Male)
	}
	return mathutil.RandomChoice(rng, CommonNames.Female)
}
