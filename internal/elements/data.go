package elements

// Table is the simplified built-in dataset: main groups plus a selection of
// transition metals and heavy elements, enough to demonstrate the full grid
// layout. Ordered by atomic number.
var Table = []Element{
	{Number: 1, Symbol: "H", NameFr: "Hydrogène", NameAr: "هيدروجين", AtomicMass: "1.008", Category: Nonmetal, Group: 1, Period: 1},
	{Number: 2, Symbol: "He", NameFr: "Hélium", NameAr: "هيليوم", AtomicMass: "4.0026", Category: NobleGas, Group: 18, Period: 1},

	{Number: 3, Symbol: "Li", NameFr: "Lithium", NameAr: "ليثيوم", AtomicMass: "6.94", Category: AlkaliMetal, Group: 1, Period: 2},
	{Number: 4, Symbol: "Be", NameFr: "Béryllium", NameAr: "بيريليوم", AtomicMass: "9.0122", Category: AlkalineEarthMetal, Group: 2, Period: 2},
	{Number: 5, Symbol: "B", NameFr: "Bore", NameAr: "بورون", AtomicMass: "10.81", Category: Metalloid, Group: 13, Period: 2},
	{Number: 6, Symbol: "C", NameFr: "Carbone", NameAr: "كربون", AtomicMass: "12.011", Category: Nonmetal, Group: 14, Period: 2},
	{Number: 7, Symbol: "N", NameFr: "Azote", NameAr: "نيتروجين", AtomicMass: "14.007", Category: Nonmetal, Group: 15, Period: 2},
	{Number: 8, Symbol: "O", NameFr: "Oxygène", NameAr: "أكسجين", AtomicMass: "15.999", Category: Nonmetal, Group: 16, Period: 2},
	{Number: 9, Symbol: "F", NameFr: "Fluor", NameAr: "فلور", AtomicMass: "18.998", Category: Halogen, Group: 17, Period: 2},
	{Number: 10, Symbol: "Ne", NameFr: "Néon", NameAr: "نيون", AtomicMass: "20.180", Category: NobleGas, Group: 18, Period: 2},

	{Number: 11, Symbol: "Na", NameFr: "Sodium", NameAr: "صوديوم", AtomicMass: "22.990", Category: AlkaliMetal, Group: 1, Period: 3},
	{Number: 12, Symbol: "Mg", NameFr: "Magnésium", NameAr: "مغنيسيوم", AtomicMass: "24.305", Category: AlkalineEarthMetal, Group: 2, Period: 3},
	{Number: 13, Symbol: "Al", NameFr: "Aluminium", NameAr: "ألومنيوم", AtomicMass: "26.982", Category: PostTransitionMetal, Group: 13, Period: 3},
	{Number: 14, Symbol: "Si", NameFr: "Silicium", NameAr: "سيليكون", AtomicMass: "28.085", Category: Metalloid, Group: 14, Period: 3},
	{Number: 15, Symbol: "P", NameFr: "Phosphore", NameAr: "فوسفور", AtomicMass: "30.974", Category: Nonmetal, Group: 15, Period: 3},
	{Number: 16, Symbol: "S", NameFr: "Soufre", NameAr: "كبريت", AtomicMass: "32.06", Category: Nonmetal, Group: 16, Period: 3},
	{Number: 17, Symbol: "Cl", NameFr: "Chlore", NameAr: "كلور", AtomicMass: "35.45", Category: Halogen, Group: 17, Period: 3},
	{Number: 18, Symbol: "Ar", NameFr: "Argon", NameAr: "أرجون", AtomicMass: "39.948", Category: NobleGas, Group: 18, Period: 3},

	{Number: 19, Symbol: "K", NameFr: "Potassium", NameAr: "بوتاسيوم", AtomicMass: "39.098", Category: AlkaliMetal, Group: 1, Period: 4},
	{Number: 20, Symbol: "Ca", NameFr: "Calcium", NameAr: "كالسيوم", AtomicMass: "40.078", Category: AlkalineEarthMetal, Group: 2, Period: 4},
	{Number: 21, Symbol: "Sc", NameFr: "Scandium", NameAr: "سكانديوم", AtomicMass: "44.956", Category: TransitionMetal, Group: 3, Period: 4},
	{Number: 22, Symbol: "Ti", NameFr: "Titane", NameAr: "تيتانيوم", AtomicMass: "47.867", Category: TransitionMetal, Group: 4, Period: 4},
	{Number: 26, Symbol: "Fe", NameFr: "Fer", NameAr: "حديد", AtomicMass: "55.845", Category: TransitionMetal, Group: 8, Period: 4},
	{Number: 29, Symbol: "Cu", NameFr: "Cuivre", NameAr: "نحاس", AtomicMass: "63.546", Category: TransitionMetal, Group: 11, Period: 4},
	{Number: 30, Symbol: "Zn", NameFr: "Zinc", NameAr: "زنك", AtomicMass: "65.38", Category: TransitionMetal, Group: 12, Period: 4},
	{Number: 35, Symbol: "Br", NameFr: "Brome", NameAr: "بروم", AtomicMass: "79.904", Category: Halogen, Group: 17, Period: 4},
	{Number: 36, Symbol: "Kr", NameFr: "Krypton", NameAr: "كريبتون", AtomicMass: "83.798", Category: NobleGas, Group: 18, Period: 4},

	{Number: 47, Symbol: "Ag", NameFr: "Argent", NameAr: "فضة", AtomicMass: "107.87", Category: TransitionMetal, Group: 11, Period: 5},
	{Number: 53, Symbol: "I", NameFr: "Iode", NameAr: "يود", AtomicMass: "126.90", Category: Halogen, Group: 17, Period: 5},
	{Number: 54, Symbol: "Xe", NameFr: "Xénon", NameAr: "زينون", AtomicMass: "131.29", Category: NobleGas, Group: 18, Period: 5},

	{Number: 79, Symbol: "Au", NameFr: "Or", NameAr: "ذهب", AtomicMass: "196.97", Category: TransitionMetal, Group: 11, Period: 6},
	{Number: 80, Symbol: "Hg", NameFr: "Mercure", NameAr: "زئبق", AtomicMass: "200.59", Category: TransitionMetal, Group: 12, Period: 6},
	{Number: 86, Symbol: "Rn", NameFr: "Radon", NameAr: "رادون", AtomicMass: "222", Category: NobleGas, Group: 18, Period: 6},

	{Number: 92, Symbol: "U", NameFr: "Uranium", NameAr: "يورانيوم", AtomicMass: "238.03", Category: Actinide, Group: 3, Period: 7},
}
