package database

import "github.com/ffremont/astackbackend/models"

// DefaultConstellations is the IAU list of the 88 modern constellations.
var DefaultConstellations = []models.Constellation{
	{Abbreviation: "And", Label: "Andromède"},
	{Abbreviation: "Ant", Label: "Machine pneumatique"},
	{Abbreviation: "Aps", Label: "Oiseau de paradis"},
	{Abbreviation: "Aqr", Label: "Verseau"},
	{Abbreviation: "Aql", Label: "Aigle"},
	{Abbreviation: "Ara", Label: "Autel"},
	{Abbreviation: "Ari", Label: "Bélier"},
	{Abbreviation: "Aur", Label: "Cocher"},
	{Abbreviation: "Boo", Label: "Bouvier"},
	{Abbreviation: "Cae", Label: "Burin"},
	{Abbreviation: "Cam", Label: "Girafe"},
	{Abbreviation: "Cnc", Label: "Cancer"},
	{Abbreviation: "CVn", Label: "Chiens de chasse"},
	{Abbreviation: "CMa", Label: "Grand Chien"},
	{Abbreviation: "CMi", Label: "Petit Chien"},
	{Abbreviation: "Cap", Label: "Capricorne"},
	{Abbreviation: "Car", Label: "Carène"},
	{Abbreviation: "Cas", Label: "Cassiopée"},
	{Abbreviation: "Cen", Label: "Centaure"},
	{Abbreviation: "Cep", Label: "Céphée"},
	{Abbreviation: "Cet", Label: "Baleine"},
	{Abbreviation: "Cha", Label: "Caméléon"},
	{Abbreviation: "Cir", Label: "Compas"},
	{Abbreviation: "Col", Label: "Colombe"},
	{Abbreviation: "Com", Label: "Chevelure de Bérénice"},
	{Abbreviation: "CrA", Label: "Couronne australe"},
	{Abbreviation: "CrB", Label: "Couronne boréale"},
	{Abbreviation: "Crv", Label: "Corbeau"},
	{Abbreviation: "Crt", Label: "Coupe"},
	{Abbreviation: "Cru", Label: "Croix du Sud"},
	{Abbreviation: "Cyg", Label: "Cygne"},
	{Abbreviation: "Del", Label: "Dauphin"},
	{Abbreviation: "Dor", Label: "Dorade"},
	{Abbreviation: "Dra", Label: "Dragon"},
	{Abbreviation: "Equ", Label: "Petit Cheval"},
	{Abbreviation: "Eri", Label: "Éridan"},
	{Abbreviation: "For", Label: "Fourneau"},
	{Abbreviation: "Gem", Label: "Gémeaux"},
	{Abbreviation: "Gru", Label: "Grue"},
	{Abbreviation: "Her", Label: "Hercule"},
	{Abbreviation: "Hor", Label: "Horloge"},
	{Abbreviation: "Hya", Label: "Hydre"},
	{Abbreviation: "Hyi", Label: "Hydre mâle"},
	{Abbreviation: "Ind", Label: "Indien"},
	{Abbreviation: "Lac", Label: "Lézard"},
	{Abbreviation: "Leo", Label: "Lion"},
	{Abbreviation: "LMi", Label: "Petit Lion"},
	{Abbreviation: "Lep", Label: "Lièvre"},
	{Abbreviation: "Lib", Label: "Balance"},
	{Abbreviation: "Lup", Label: "Loup"},
	{Abbreviation: "Lyn", Label: "Lynx"},
	{Abbreviation: "Lyr", Label: "Lyre"},
	{Abbreviation: "Men", Label: "Table"},
	{Abbreviation: "Mic", Label: "Microscope"},
	{Abbreviation: "Mon", Label: "Licorne"},
	{Abbreviation: "Mus", Label: "Mouche"},
	{Abbreviation: "Nor", Label: "Règle"},
	{Abbreviation: "Oct", Label: "Octant"},
	{Abbreviation: "Oph", Label: "Ophiuchus"},
	{Abbreviation: "Ori", Label: "Orion"},
	{Abbreviation: "Pav", Label: "Paon"},
	{Abbreviation: "Peg", Label: "Pégase"},
	{Abbreviation: "Per", Label: "Persée"},
	{Abbreviation: "Phe", Label: "Phénix"},
	{Abbreviation: "Pic", Label: "Peintre"},
	{Abbreviation: "Psc", Label: "Poissons"},
	{Abbreviation: "PsA", Label: "Poisson austral"},
	{Abbreviation: "Pup", Label: "Poupe"},
	{Abbreviation: "Pyx", Label: "Boussole"},
	{Abbreviation: "Ret", Label: "Réticule"},
	{Abbreviation: "Sge", Label: "Flèche"},
	{Abbreviation: "Sgr", Label: "Sagittaire"},
	{Abbreviation: "Sco", Label: "Scorpion"},
	{Abbreviation: "Scl", Label: "Sculpteur"},
	{Abbreviation: "Sct", Label: "Écu de Sobieski"},
	{Abbreviation: "Ser", Label: "Serpent"},
	{Abbreviation: "Sex", Label: "Sextant"},
	{Abbreviation: "Tau", Label: "Taureau"},
	{Abbreviation: "Tel", Label: "Télescope"},
	{Abbreviation: "Tri", Label: "Triangle"},
	{Abbreviation: "TrA", Label: "Triangle austral"},
	{Abbreviation: "Tuc", Label: "Toucan"},
	{Abbreviation: "UMa", Label: "Grande Ourse"},
	{Abbreviation: "UMi", Label: "Petite Ourse"},
	{Abbreviation: "Vel", Label: "Voiles"},
	{Abbreviation: "Vir", Label: "Vierge"},
	{Abbreviation: "Vol", Label: "Poisson volant"},
	{Abbreviation: "Vul", Label: "Petit Renard"},
}
