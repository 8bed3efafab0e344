package cli

// Keyboard is the raw input surface the renderer drives. *console.Console
// implements it; tests substitute a scripted fake.
type Keyboard interface {
	// Read returns the next raw input code, blocking when wait is true.
	// End of input is console.EndOfInput with a nil error; interrupt
	// keystrokes carry console.ErrInterrupted.
	Read(wait bool) (int, error)

	// ReadLine switches to cooked line input for one read.
	ReadLine() (string, error)

	// Restore puts the terminal back into its original mode.
	Restore() error
}
