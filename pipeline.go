package journaltex

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

// NormalizeAll 并发归一化多个片段，结果顺序与输入一致
//
// 每个结果都是 EnsureLatex 的输出：失败的片段得到诊断文本，不影响其他片段。
// ctx 被取消时尚未开始的片段不再处理，并返回 ctx.Err()。
func NormalizeAll(ctx context.Context, inputs []string, opts ...Option) ([]string, error) {
	options := applyOptions(opts...)
	results := make([]string, len(inputs))
	err := fanOut(ctx, len(inputs), options.Concurrency, func(i int) {
		results[i] = ensureLatex(inputs[i], options)
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// NormalizeArticles 并发构建文章，每篇文章的各个字段独立归一化
func NormalizeArticles(ctx context.Context, raws []RawArticle, opts ...Option) ([]*Article, error) {
	options := applyOptions(opts...)
	articles := make([]*Article, len(raws))
	err := fanOut(ctx, len(raws), options.Concurrency, func(i int) {
		articles[i] = newArticle(raws[i], options)
	})
	if err != nil {
		return nil, err
	}
	Logger.Info("articles normalized", zap.Int("count", len(articles)))
	return articles, nil
}

// fanOut runs work(0..n-1) with at most limit goroutines at a time. Every
// index is written by exactly one goroutine, so callers need no locking.
func fanOut(ctx context.Context, n, limit int, work func(i int)) error {
	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		// Acquire semaphore
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			wg.Wait()
			return ctx.Err()
		}

		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			defer func() { <-sem }()
			work(idx)
		}(i)
	}

	wg.Wait()
	return ctx.Err()
}
