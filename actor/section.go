package actor

// WriteSection puts body to sleep, runs fn and wakes the body again, even
// when fn fails or panics. Manual position and rotation writes happen inside
// a section so the engine's integration does not fight them.
func WriteSection(body Body, fn func() error) error {
	if body == nil {
		return ErrNoBody
	}
	body.Sleep()
	defer body.WakeUp()
	return fn()
}
