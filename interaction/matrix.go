package interaction

// Matrix 是用户-商品加权评分矩阵。
// 权重只增不减（除非整体重置）；缺失条目的权重定义为 0，
// 通过显式访问器暴露，不对外泄露自动扩容的内层 map。
//
// 用户与商品都保留首次出现顺序，保证稠密矩阵展开时行列顺序稳定，
// 相同输入下协同过滤结果可复现。
type Matrix struct {
	users    []string
	products []string

	weights    map[string]map[string]float64 // user -> product -> weight
	productSet map[string]struct{}
}

func NewMatrix() *Matrix {
	return &Matrix{
		weights:    make(map[string]map[string]float64),
		productSet: make(map[string]struct{}),
	}
}

// Add 为 (user, product) 累加权重。
func (m *Matrix) Add(userID, productID string, weight float64) {
	row, ok := m.weights[userID]
	if !ok {
		row = make(map[string]float64)
		m.weights[userID] = row
		m.users = append(m.users, userID)
	}
	if _, ok := m.productSet[productID]; !ok {
		m.productSet[productID] = struct{}{}
		m.products = append(m.products, productID)
	}
	row[productID] += weight
}

// Weight 返回 (user, product) 的累计权重；缺失条目返回 0。
func (m *Matrix) Weight(userID, productID string) float64 {
	row, ok := m.weights[userID]
	if !ok {
		return 0
	}
	return row[productID]
}

// HasUser 检查用户是否有任何矩阵条目。
func (m *Matrix) HasUser(userID string) bool {
	_, ok := m.weights[userID]
	return ok
}

// HasEntry 检查 (user, product) 是否存在显式条目。
// 协同过滤只向"从未交互过"的商品推荐，依据的是条目缺失而非权重为 0。
func (m *Matrix) HasEntry(userID, productID string) bool {
	row, ok := m.weights[userID]
	if !ok {
		return false
	}
	_, ok = row[productID]
	return ok
}

// UserWeights 返回用户的商品权重行（副本）。未知用户返回空 map。
func (m *Matrix) UserWeights(userID string) map[string]float64 {
	row, ok := m.weights[userID]
	if !ok {
		return map[string]float64{}
	}
	out := make(map[string]float64, len(row))
	for k, v := range row {
		out[k] = v
	}
	return out
}

// Users 返回所有有条目的用户，按首次出现顺序。
func (m *Matrix) Users() []string {
	out := make([]string, len(m.users))
	copy(out, m.users)
	return out
}

// Products 返回所有被交互过的商品（跨全部用户的并集），按首次出现顺序。
func (m *Matrix) Products() []string {
	out := make([]string, len(m.products))
	copy(out, m.products)
	return out
}

// Dense 将矩阵展开为稠密二维权重矩阵，行=Users() 顺序，列=Products() 顺序。
// 缺失条目填 0。
func (m *Matrix) Dense() [][]float64 {
	rows := make([][]float64, len(m.users))
	for i, u := range m.users {
		row := make([]float64, len(m.products))
		for j, p := range m.products {
			row[j] = m.weights[u][p]
		}
		rows[i] = row
	}
	return rows
}
