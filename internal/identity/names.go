package identity

// Name pools for synthesizing friendly addresses. Test-data realism only;
// nothing downstream depends on the contents.

var firstNames = []string{
	"Amelia", "Bennett", "Caroline", "Dominic", "Edith", "Felix", "Georgia",
	"Hugo", "Imogen", "Jasper", "Katherine", "Lionel", "Miriam", "Nathaniel",
	"Olive", "Percy", "Quentin", "Rosalind", "Silas", "Tabitha", "Ulysses",
	"Vera", "Wallace", "Xenia", "Yvette", "Zachary", "Beatrice", "Clifford",
	"Dorothea", "Edmund", "Florence",
}

var lastNames = []string{
	"Ashford", "Blakely", "Carrow", "Davenport", "Ellsworth", "Fairbanks",
	"Goddard", "Hollis", "Ingram", "Jennings", "Kensington", "Lockwood",
	"Merriweather", "Northway", "Ogilvie", "Pemberton", "Quimby", "Ravenel",
	"Stroud", "Thackeray", "Underhill", "Vandermeer", "Whitfield", "Yardley",
	"Abernathy", "Birchall", "Colfax", "Drummond", "Everhart", "Fenwick",
	"Grantham",
}
