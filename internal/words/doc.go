// Package words loads the list of secret words.
//
// A list is plain text with one word per line. Three sources are supported
// and chosen by NewSource from a single configuration string:
//
//	builtin                       the list compiled into the binary
//	/path/to/words.txt            a local file
//	https://example.com/words.txt an HTTP download bound to the caller's context
//
// Parse normalises and filters the input, Load wraps it for the game and
// Pick chooses the secret word from an injectable random source.
package words
