package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestResolveHeader(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected []string
	}{
		{
			name: "last qualifying row wins",
			html: `<table><thead>
<tr><th colspan="3"><h3>資訊管理學系</h3></th></tr>
<tr><th>類別</th><th>科目名稱</th></tr>
<tr><th>类别</th><th>領 域</th><th> 科目
名稱 </th><th></th></tr>
</thead></table>`,
			expected: []string{"类别", "領域", "科目名稱", ""},
		},
		{
			name: "simplified course label",
			html: `<table><thead><tr><th>类别</th><th>科目名称</th></tr></thead></table>`,
			expected: []string{"类别", "科目名称"},
		},
		{
			name: "later thead sections are scanned too",
			html: `<table>
<thead><tr><th>類別</th><th>科目名稱</th></tr></thead>
<thead><tr><th>類別</th><th>領域</th><th>科目名稱</th></tr></thead>
</table>`,
			expected: []string{"類別", "領域", "科目名稱"},
		},
		{
			name:     "td cells do not qualify",
			html:     `<table><thead><tr><td>類別</td><td>科目名稱</td></tr></thead></table>`,
			expected: []string{},
		},
		{
			name:     "course label required",
			html:     `<table><thead><tr><th>類別</th><th>領域</th></tr></thead></table>`,
			expected: []string{},
		},
		{
			name:     "no thead",
			html:     `<table><tbody><tr><th>類別</th><th>科目名稱</th></tr></tbody></table>`,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveHeader(mustTable(t, tt.html), DefaultHeaderKeyMap())
			if got == nil {
				t.Fatal("ResolveHeader returned nil")
			}
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("ResolveHeader mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestHeaderKeyMapKeys(t *testing.T) {
	keys := DefaultHeaderKeyMap().Keys([]string{"類別", "科目名稱", "備註", "實得學分"})

	expected := []string{KeyCategory, KeyCourseCell, "", KeyEarnedCreditsCourse}
	for i, k := range keys {
		switch {
		case expected[i] == "" && k != nil:
			t.Errorf("key %d = %q, expected nil", i, *k)
		case expected[i] != "" && (k == nil || *k != expected[i]):
			t.Errorf("key %d = %v, expected %q", i, k, expected[i])
		}
	}
}
