package staticdata

import "broodcore/pkg/domain"

// Nest-size distributions. An identical modern pairing uses sameBreedNest;
// every other compatible pairing (different modern breeds, or an ancient
// breed with itself) uses mixedNest.
var sameBreedNest = []domain.NestSize{
	{Eggs: 1, Probability: 0.1},
	{Eggs: 2, Probability: 0.3},
	{Eggs: 3, Probability: 0.3},
	{Eggs: 4, Probability: 0.2},
	{Eggs: 5, Probability: 0.1},
}

var mixedNest = []domain.NestSize{
	{Eggs: 1, Probability: 0.15},
	{Eggs: 2, Probability: 0.35},
	{Eggs: 3, Probability: 0.3},
	{Eggs: 4, Probability: 0.2},
}
