package lftplot

//Some internal convenience functions.

//isInString is a helper for the level tagging,
//returns true if test is in container, false otherwise.
func isInString(container []string, test string) bool {
	if container == nil {
		return false
	}
	for _, i := range container {
		if test == i {
			return true
		}
	}
	return false
}
