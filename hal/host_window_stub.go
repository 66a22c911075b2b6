//go:build !cgo

package hal

func RunWindow(_ WindowConfig, _ func(h HAL) func() error) error {
	return ErrNoWindow
}
