package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/ukaji3/gradcheck-go/pkg/gradcheck/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7D56F4")).
			Bold(true).
			MarginBottom(1)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086"))

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			PaddingRight(2)

	passStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#40A02B"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#D20F39"))
)

// Text renders a terminal summary of the checklist.
func Text(c *models.Checklist) string {
	var blocks []string
	blocks = append(blocks, titleStyle.Render(title(c)))
	if c.Meta.StudentInfo != nil {
		blocks = append(blocks, mutedStyle.Render(*c.Meta.StudentInfo))
	}

	lines := summaryLines(c)
	width := 0
	for _, line := range lines {
		if w := lipgloss.Width(line.Label); w > width {
			width = w
		}
	}
	for _, line := range lines {
		blocks = append(blocks, labelStyle.Width(width+2).Render(line.Label)+line.Value)
	}

	if rs := c.RuleSummary; rs != nil {
		blocks = append(blocks, "",
			check("體育", rs.PE.Passed),
			check("服務學習", rs.Service.Passed),
			check("畢業總學分", rs.Graduation.Passed),
		)
	}

	if ra := c.SubdomainReassignment; ra != nil && ra.Enabled {
		blocks = append(blocks, "", reassignmentLine(ra))
	}

	blocks = append(blocks, "", mutedStyle.Render(fmt.Sprintf("%d rows", c.Count)))
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func check(label string, passed bool) string {
	if passed {
		return passStyle.Render("✓ " + label)
	}
	return failStyle.Render("✗ " + label)
}

func reassignmentLine(ra *models.Reassignment) string {
	if ra.Error != "" {
		return failStyle.Render("reassignment: " + ra.Error)
	}
	if ra.Chosen == nil {
		return mutedStyle.Render(fmt.Sprintf("reassignment: threshold %s not reached", formatNumber(ra.Threshold)))
	}
	return fmt.Sprintf("reassignment: kept %s, moved %d rows (%s credits) to %s",
		*ra.Chosen, ra.MovedCount, formatNumber(ra.MovedCredits), ra.Target)
}
