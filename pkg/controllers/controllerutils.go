package controllers

import "fmt"

func errMissingQuery(name string) error {
	return fmt.Errorf("missing required query parameter: %s", name)
}
