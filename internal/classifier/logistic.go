package classifier

import "math"

const (
	maxIterations  = 1000
	learningRate   = 0.5
	convergenceTol = 1e-6
)

// logisticRegression is a binary linear model fit by batch gradient descent
type logisticRegression struct {
	weights []float64
	bias    float64
	trained bool
}

// fit trains the model on feature rows X with binary targets y. It runs at
// most maxIterations passes, stopping early once the gradient flattens out.
func (m *logisticRegression) fit(X [][]float64, y []int) {
	if len(X) == 0 {
		return
	}
	dim := len(X[0])
	m.weights = make([]float64, dim)
	m.bias = 0

	n := float64(len(X))
	grad := make([]float64, dim)

	for iter := 0; iter < maxIterations; iter++ {
		for i := range grad {
			grad[i] = 0
		}
		var biasGrad float64

		for i, row := range X {
			err := m.decision(row) - float64(y[i])
			for j, v := range row {
				grad[j] += err * v
			}
			biasGrad += err
		}

		maxStep := math.Abs(biasGrad / n)
		m.bias -= learningRate * biasGrad / n
		for j := range m.weights {
			step := grad[j] / n
			m.weights[j] -= learningRate * step
			if s := math.Abs(step); s > maxStep {
				maxStep = s
			}
		}

		if maxStep < convergenceTol {
			break
		}
	}
	m.trained = true
}

// predictProba returns the estimated probability of the positive class
func (m *logisticRegression) predictProba(x []float64) float64 {
	return m.decision(x)
}

func (m *logisticRegression) decision(x []float64) float64 {
	z := m.bias
	for j, w := range m.weights {
		if j >= len(x) {
			break
		}
		z += w * x[j]
	}
	return sigmoid(z)
}

func sigmoid(z float64) float64 {
	return 1.0 / (1.0 + math.Exp(-z))
}
