package messages

import "fmt"

const (
	InvalidInput    = "Invalid input"
	OperationFailed = "Operation failed"
)

func Welcome(username string) string {
	return fmt.Sprintf("Welcome to the File Manager, %s!", username)
}

func Farewell(username string) string {
	return fmt.Sprintf("Thank you for using File Manager, %s, goodbye!", username)
}

func CurrentDirectory(path string) string {
	return fmt.Sprintf("You are currently in %s", path)
}
