package token

func markedRun(d []byte, mark byte, stops string) int {
	if len(d) < 2 || d[0] != mark {
		return 0
	}
	n := runExcept(d[1:], stops)
	if n == 0 {
		return 0
	}
	return n + 1
}

func ref(d []byte) int {
	if len(d) == 0 || d[0] != '@' {
		return 0
	}
	return 1 + runExcept(d[1:], refStops)
}

func issue(d []byte) int {
	return markedRun(d, '#', issueStops)
}

func refinement(d []byte) int {
	return markedRun(d, '/', refinementStops)
}

func email(d []byte) int {
	n := runExcept(d, emailStops)
	if n == 0 || n >= len(d) || d[n] != '@' {
		return 0
	}
	return n + 1 + runExcept(d[n+1:], emailStops)
}

func file(d []byte) int {
	if len(d) > 1 && d[0] == '%' && d[1] == '"' {
		if n := quoted(d[1:]); n > 0 {
			return n + 1
		}
		return 0
	}
	return markedRun(d, '%', fileStops)
}

// urlRest scans what follows the scheme colon of a url.
func urlRest(d []byte) int {
	return runExcept(d, urlStops)
}
