// Package journaltex 将网络上抓取的文本片段（标题、作者、摘要、期刊名）转换为可以安全编译的 LaTeX
//
// 输入可能带有 HTML 标签、实体以及各种形式的数学公式。输出保证：
//   - 未知命令被降级为普通文本
//   - 花括号不平衡的输入被拒绝（返回诊断文本）
//   - 数学内容被规整为一个小而安全的子集，统一写成 $...$
//
// 主要 API：
//   - Normalize(): 单个片段，返回 (text, error)
//   - EnsureLatex(): 单个片段，失败时返回诊断文本
//   - NormalizeAll() / NormalizeArticles(): 并发批量处理
//   - Document: 组装完整的 .tex 文档
//
// 示例：
//
//	text := journaltex.EnsureLatex(`Spin $\text{spin}&gt;1/2$ chains`)
//
//	articles, err := journaltex.NormalizeArticles(ctx, raws, journaltex.WithConcurrency(4))
//	doc := journaltex.NewDocument(start, end)
//	doc.AddGroup(journaltex.Group{Name: "arXiv", Articles: articles}, filter)
//	_, err = doc.WriteTo(os.Stdout)
package journaltex
