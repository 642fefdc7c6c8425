package xerrors

var (
	// ErrEmptyData 输入序列为空，无法构建线段树。
	ErrEmptyData = New(ErrInvalidArg, 400101, "empty data", "input sequence must not be empty", nil)
	// ErrIndexOutOfRange 查询或更新索引超出构建时确定的有效区间。
	ErrIndexOutOfRange = New(ErrOutOfRange, 400102, "index out of range", "index must lie within the bounds fixed at construction", nil)
	// ErrInvalidRange 区间端点非法 (low > high)。
	ErrInvalidRange = New(ErrOutOfRange, 400103, "invalid range", "range low must not exceed high", nil)
	// ErrNodeNotFound 节点不属于构建时传入的树。
	ErrNodeNotFound = New(ErrNotFound, 404101, "node not found", "node id was not part of the tree supplied at construction", nil)
	// ErrInvalidTree 树结构非法：存在环、重复父节点或越界的子节点编号。
	ErrInvalidTree = New(ErrInvalidArg, 400104, "invalid tree", "adjacency must encode a rooted tree reachable from the root", nil)
)
