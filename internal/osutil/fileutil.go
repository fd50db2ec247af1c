package osutil

import "os"

// IsRegularFile checks if a regular file exists at the given path.
// Directories and special files report false.
func IsRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// IsReadable checks if the invoking process can open the file at the
// given path for reading. Opening the file, rather than inspecting
// permission bits, keeps the answer correct under ACLs and for
// privileged users.
func IsReadable(path string) bool {
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}
