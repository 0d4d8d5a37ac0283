package climb

// Note: this is informal, subject to change.
const version = "v0.1.0"

// Version returns the version of the climb library.
func Version() string {
	return version
}
