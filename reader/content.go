package reader

// Topic is one page of the reader
type Topic struct {
	Title string
	Body  string
}

var Topics = []Topic{
	{
		"Finite Automata",
		"A finite automaton is a mathematical model made of states and " +
			"transitions.\n\nEach input symbol moves the machine from its " +
			"current state to the next one.\n\nFinite automata recognize " +
			"exactly the regular languages.",
	},
	{
		"Turing Machine",
		"The most powerful theoretical model of computation.\n\n" +
			"It has an infinite tape, a head that reads and writes one " +
			"cell at a time, and a small table of simple rules. Each " +
			"rule looks at the current state and the symbol under the " +
			"head, writes a symbol, moves the head left or right, and " +
			"picks the next state.\n\n" +
			"It can simulate any algorithm. A universal machine reads " +
			"the rules of another machine from its own tape and runs " +
			"them, which is the idea behind the stored-program computer.",
	},
	{
		"Halting Problem",
		"There is no general algorithm that decides whether an " +
			"arbitrary program will halt on a given input.\n\n" +
			"Alan Turing proved this limit in 1936.",
	},
	{
		"P vs NP",
		"Some problems are easy to check but seem hard to solve.\n\n" +
			"P is the class of problems solvable in polynomial time; NP " +
			"is the class whose answers can be checked in polynomial " +
			"time.\n\nWe still don't know whether P = NP.",
	},
	{
		"Philosophy of Computing",
		"To compute is to manipulate symbols.\n\n" +
			"But meaning is not in the machine.",
	},
}
