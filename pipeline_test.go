package journaltex

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func generateInputs(n int) []string {
	templates := []string{
		`Sample %d with $x_%d^2$ and 50%% noise`,
		`$6{s}^{2}^{%d}$ chain %d`,
		`<p>Entity &gt; %d and $\alpha_{%d}$</p>`,
		`Broken {brace %d %d`,
		`$a{b %d$ then %d}`,
		`\begin{equation}E_%d = \hbar\omega_%d\end{equation}`,
	}
	inputs := make([]string, n)
	for i := range inputs {
		inputs[i] = fmt.Sprintf(templates[i%len(templates)], i, i)
	}
	return inputs
}

// TestNormalizeAll_MatchesSequential 并发结果必须与顺序执行完全一致
func TestNormalizeAll_MatchesSequential(t *testing.T) {
	inputs := generateInputs(1000)

	want := make([]string, len(inputs))
	for i, in := range inputs {
		want[i] = EnsureLatex(in)
	}

	got, err := NormalizeAll(context.Background(), inputs, WithConcurrency(16))
	if err != nil {
		t.Fatalf("NormalizeAll() error = %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("NormalizeAll() mismatch (-want +got):\n%s", diff)
	}
}

// TestNormalizeAll_Empty 测试空输入
func TestNormalizeAll_Empty(t *testing.T) {
	got, err := NormalizeAll(context.Background(), nil)
	if err != nil {
		t.Fatalf("NormalizeAll() error = %v", err)
	}
	if len(got) != 0 {
		t.Errorf("NormalizeAll(nil) = %v", got)
	}
}

// TestNormalizeAll_Canceled 测试取消的 context
func TestNormalizeAll_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NormalizeAll(ctx, generateInputs(100), WithConcurrency(1))
	if !errors.Is(err, context.Canceled) {
		t.Errorf("NormalizeAll() error = %v, want context.Canceled", err)
	}
}

// TestNormalizeArticles 测试并发构建文章保持顺序
func TestNormalizeArticles(t *testing.T) {
	date := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	raws := make([]RawArticle, 50)
	for i := range raws {
		raws[i] = RawArticle{
			Title:   fmt.Sprintf("Article %d with $x^%d$", i, i%10),
			URL:     fmt.Sprintf("https://example.org/%d", i),
			Date:    date,
			Authors: []string{"Ada Lovelace"},
			Summary: "50% done",
			Journal: "PRL",
		}
	}

	articles, err := NormalizeArticles(context.Background(), raws, WithConcurrency(4))
	if err != nil {
		t.Fatalf("NormalizeArticles() error = %v", err)
	}
	for i, a := range articles {
		want := fmt.Sprintf("Article %d with $x^%d$", i, i%10)
		if a.Title != want || a.URL != raws[i].URL {
			t.Errorf("articles[%d] = %q %q, want %q", i, a.Title, a.URL, want)
		}
		if a.Summary != `50\% done` {
			t.Errorf("articles[%d].Summary = %q", i, a.Summary)
		}
	}
}
