package target

// FederatedProperty marks the program as federated. Loading a program with
// federate blocks sets it implicitly.
var FederatedProperty = &BoolProperty{
	name:        "federated",
	description: "Whether the program is split into federates running on separate nodes.",
}
