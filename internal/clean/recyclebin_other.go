//go:build !windows

package clean

// QueryRecycleBin reports the Recycle Bin size; unsupported off Windows.
func QueryRecycleBin() (int64, error) {
	return 0, ErrRecycleBinUnsupported
}

// EmptyRecycleBin empties the Recycle Bin; unsupported off Windows.
func EmptyRecycleBin() error {
	return ErrRecycleBinUnsupported
}
