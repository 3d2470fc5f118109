// Package maps provides named discrete map models.
//
// Each model implements the [Model] interface, defining the map
// x_{n+1} = f(x_n) together with a closed-form Jacobian where one is
// known:
//
//   - [Logistic]: the logistic map r*x*(1-x)
//   - [Tent]: the tent map
//   - [Gauss]: the Gaussian (mouse) map
//   - [Linear]: a diagonal linear map
//   - [Henon]: the Henon attractor
//   - [Standard]: the Chirikov standard map
//   - [Ikeda]: the Ikeda map (no closed-form Jacobian supplied;
//     exercises the numeric fallback)
//
// Models with tunable parameters expose them through GetParams and
// SetParam for bifurcation sweeps.
package maps
