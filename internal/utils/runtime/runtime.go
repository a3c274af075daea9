package runtime

// Must panics if err is non-nil. For wiring-time calls that cannot fail at
// runtime once configuration is correct.
func Must(err error) {
	if err != nil {
		panic(err)
	}
}
