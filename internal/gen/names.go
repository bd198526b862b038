package gen

// Fixed name fragments and district labels. Picks are uniform with
// replacement and independent, so duplicate names across rows are expected.

var surnames = []string{
	"Nguyen",
	"Tran",
	"Le",
	"Pham",
	"Hoang",
	"Vo",
	"Dang",
	"Bui",
	"Ngo",
	"Truong",
}

var middleNames = []string{
	"Van",
	"Thi",
	"Duc",
	"Minh",
	"Quang",
	"Thanh",
	"Manh",
	"Quoc",
	"Hong",
	"Tuan",
}

var givenNames = []string{
	"An", "Binh", "Cuong", "Dung", "Em", "Phong", "Giang", "Hai", "Khoa", "Lam",
	"Hoa", "Lan", "Linh", "Nga", "Huong", "Tam", "Tuan", "Hung", "Duc", "Thao",
}

var districts = []string{
	"Quan 1",
	"Quan 3",
	"Quan 5",
	"Quan 7",
	"Quan 10",
	"Quan Binh Thanh",
	"Quan Go Vap",
	"Quan Thu Duc",
	"Quan Phu Nhuan",
	"Quan Tan Binh",
}

// Name builds a plausible personal name from one surname, one middle token
// and one given name.
func Name(src *Source) string {
	surname := surnames[src.IntBetween(0, len(surnames)-1)]
	middle := middleNames[src.IntBetween(0, len(middleNames)-1)]
	given := givenNames[src.IntBetween(0, len(givenNames)-1)]
	return surname + " " + middle + " " + given
}

// District picks one of the fixed district labels.
func District(src *Source) string {
	return districts[src.IntBetween(0, len(districts)-1)]
}
