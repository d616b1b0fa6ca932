package search

// prefix is a minimal leading digit pattern containing no 7, 8, or 9.
type prefix struct {
	str    string
	digits int
	prod   uint64 // product of the prefix digits
}

// prefixes is the closed set of prefixes a canonical form can start with.
//
// Any zero-free number can be shrunk by splitting its digits into primes
// and recombining them so that 5s, 7s, 8s, and 9s collect on the right and
// one of the six patterns below is left on the front. 7236, for example,
// recombines to 479, the smallest number whose digits multiply to the same
// value. Generating numbers as <prefix> followed by runs of trailing digits
// therefore covers every distinct digit product exactly once, each by its
// smallest representative. The construction is Matt Parker's:
// https://www.youtube.com/watch?v=Wim9WJeDTHQ
//
// Ordered by the magnitude of the numbers they lead. "26" sorts first even
// though it looks largest: any other 2-digit opening pairs a small digit
// with a trailing digit that is at least 7.
var prefixes = [6]prefix{
	{"26", 2, 12},
	{"2", 1, 2},
	{"3", 1, 3},
	{"4", 1, 4},
	{"6", 1, 6},
	{"", 0, 1},
}
