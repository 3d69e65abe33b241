package progress

// SetTTY forces the progress bar path regardless of the writer.
func SetTTY(r *Reporter, tty bool) {
	r.tty = tty
}

// Active returns the domain of the open bar, if any.
func Active(r *Reporter) (string, bool) {
	return r.domain, r.bar != nil
}
