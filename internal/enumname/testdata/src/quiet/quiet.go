package quiet

type Flavor int

const FlavorSweet Flavor = 1
