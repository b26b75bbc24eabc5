package mismatch // want `Namespace 'mismatch' does not match expected project namespace 'app'`

// Hello is here so the package has something to rename around.
func Hello() string {
	return "hello"
}
