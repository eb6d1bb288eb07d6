package deck

import "math"

// Summarize computes the aggregate counters for a set of slides and global issues.
func Summarize(slides []Slide, global []Issue) Summary {
	var sum Summary
	var words, bullets int

	count := func(issues []Issue) {
		for _, issue := range issues {
			sum.TotalIssues++
			switch issue.Severity {
			case SeverityHigh:
				sum.HighSeverityIssues++
			case SeverityMedium:
				sum.MediumIssues++
			case SeverityLow:
				sum.LowIssues++
			}
		}
	}

	for _, s := range slides {
		words += s.WordCount
		bullets += s.BulletCount
		if s.HasImage {
			sum.SlidesWithImages++
		}
		if s.HasChart {
			sum.SlidesWithCharts++
		}
		if s.HasTable {
			sum.SlidesWithTables++
		}
		count(s.Issues)
	}
	count(global)

	if len(slides) > 0 {
		sum.AvgWordsPerSlide = round1(float64(words) / float64(len(slides)))
		sum.AvgBulletsPerSlide = round1(float64(bullets) / float64(len(slides)))
	}

	return sum
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
