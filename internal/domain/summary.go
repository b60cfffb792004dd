package domain

// Summary aggregates a roster: the mean of all student averages and the
// students with the highest and lowest average.
type Summary struct {
	GroupAverage float64
	Best         Student
	Worst        Student
}

// Summarize computes a Summary. Ties keep the earliest student in roster order.
// It returns ErrEmptyRoster when students is empty.
func Summarize(students []Student) (Summary, error) {
	if len(students) == 0 {
		return Summary{}, ErrEmptyRoster
	}

	best, worst := students[0], students[0]
	total := 0.0
	for _, s := range students {
		avg := s.Average()
		total += avg
		if avg > best.Average() {
			best = s
		}
		if avg < worst.Average() {
			worst = s
		}
	}

	return Summary{
		GroupAverage: total / float64(len(students)),
		Best:         best.Clone(),
		Worst:        worst.Clone(),
	}, nil
}
