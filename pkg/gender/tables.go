package gender

// Curated common first names used by the default table. The lists make no
// claim to completeness; names absent from both resolve as Unknown.
var (
	defaultMale = []string{
		"james", "john", "robert", "michael", "william", "david", "richard",
		"joseph", "thomas", "charles", "christopher", "daniel", "matthew",
		"anthony", "mark", "donald", "steven", "paul", "andrew", "joshua",
		"kenneth", "kevin", "brian", "george", "edward", "ronald", "timothy",
		"jason", "jeffrey", "ryan", "jacob", "gary", "nicholas", "eric",
		"jonathan", "stephen", "larry", "justin", "scott", "brandon",
		"benjamin", "samuel", "gregory", "frank", "alexander", "raymond",
		"patrick", "jack", "dennis", "jerry", "tyler", "aaron", "jose",
		"adam", "nathan", "henry", "douglas", "zachary", "peter", "kyle",
		"walter", "ethan", "jeremy", "harold", "keith", "christian", "roger",
		"noah", "gerald", "carl", "terry", "sean", "austin", "arthur",
		"lawrence", "dylan", "bryan", "joe", "bruce", "albert", "willie",
		"gabriel", "logan", "alan", "juan", "wayne", "roy", "ralph", "randy",
		"eugene", "vincent", "russell", "louis", "philip", "bobby", "johnny",
		"bradley", "fred", "frederick", "stanley", "leonard", "martin",
		"ernest", "howard", "norman", "bernard", "herbert", "clarence",
		"leroy", "theodore", "clifford", "gordon", "hugh", "oscar", "victor",
	}

	defaultFemale = []string{
		"mary", "patricia", "jennifer", "linda", "elizabeth", "barbara",
		"susan", "jessica", "sarah", "karen", "lisa", "nancy", "betty",
		"margaret", "sandra", "ashley", "kimberly", "emily", "donna",
		"michelle", "carol", "amanda", "dorothy", "melissa", "deborah",
		"stephanie", "rebecca", "sharon", "laura", "cynthia", "kathleen",
		"amy", "angela", "shirley", "anna", "brenda", "pamela", "emma",
		"nicole", "helen", "samantha", "katherine", "christine", "debra",
		"rachel", "carolyn", "janet", "catherine", "maria", "heather",
		"diane", "ruth", "julie", "olivia", "joyce", "virginia", "victoria",
		"kelly", "lauren", "christina", "joan", "evelyn", "judith", "megan",
		"andrea", "cheryl", "hannah", "jacqueline", "martha", "gloria",
		"teresa", "ann", "sara", "madison", "frances", "kathryn", "janice",
		"jean", "abigail", "alice", "julia", "judy", "sophia", "grace",
		"denise", "amber", "doris", "marilyn", "danielle", "beverly",
		"isabella", "theresa", "diana", "natalie", "charlotte", "rose",
		"kayla", "lillian", "edna", "ethel", "mildred", "florence", "irene",
		"bertha", "agnes", "vera", "pauline", "josephine",
	}
)

// DefaultTable returns the built-in first-name table.
func DefaultTable() *Table {
	return NewTable(defaultMale, defaultFemale)
}
