package pkg

import (
	"fmt"
	"os"
)

// CheckFileExist 检查文件是否存在
func CheckFileExist(filePath string) (bool, error) {
	_, err := os.Lstat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// ReadFile checks filePath exists before reading it whole, giving a
// clearer "not found" error than os.ReadFile's raw PathError.
func ReadFile(filePath string) ([]byte, error) {
	exists, err := CheckFileExist(filePath)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("file does not exist: %s", filePath)
	}
	return os.ReadFile(filePath)
}
